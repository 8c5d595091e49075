package filestorage

import "mime/multipart"

// FileStorage is the storage abstraction the services consume. Controllers
// hand over the raw multipart header; the implementation returns the
// accessible URL path to stamp onto the record.
type FileStorage interface {
	// SaveFileWithPath saves an uploaded file under the given subdirectory.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file; deleting a missing file is a no-op.
	DeleteFile(filePath string) error
}
