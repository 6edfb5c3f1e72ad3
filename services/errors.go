package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors matched with errors.Is at the API boundary, where
// they become in-body {success:false, status:...} responses.
var (
	// ErrProjectNotFound means the project id did not resolve.
	ErrProjectNotFound = errors.New("project not found")

	// ErrUserNotFound means the session subject no longer resolves.
	ErrUserNotFound = errors.New("user not found")

	// ErrConflict means the login id is already registered.
	ErrConflict = errors.New("login id already registered")

	// ErrInvalidCredentials covers both unknown login id and wrong
	// password, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid login id or password")

	// ErrDuplicateName means the owner already has another project
	// with the submitted basic-info name.
	ErrDuplicateName = errors.New("project name already used by this account")

	// ErrInvalidGalleryType means the category is not one of the
	// three known gallery lists.
	ErrInvalidGalleryType = errors.New("invalid gallery type")

	// ErrFileNotFound means the referenced filename is not present in
	// the targeted section.
	ErrFileNotFound = errors.New("file not found")

	// ErrMissingTitle means a document batch arrived without a title.
	ErrMissingTitle = errors.New("file title is required")
)

// mapNotFound translates gorm's record-not-found into the domain
// sentinel. Section writes need this too: the row can vanish between
// the existence check and the update.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProjectNotFound
	}
	return err
}
