package domain

// Repository describes one repository returned by the listing endpoint.
// Descriptors are consumed immediately by the archive downloader and are
// not persisted.
type Repository struct {
	// Owner is the login of the account owning the repository.
	Owner string

	// Name is the repository name, used for the archive URL and the
	// destination filename.
	Name string

	// Private reports whether the repository is private.
	Private bool
}

// FullName returns the owner/name form used in logs.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}
