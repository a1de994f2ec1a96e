package draft

import "errors"

var (
	ErrUnknownField      = errors.New("unknown profile field")
	ErrFieldType         = errors.New("value has the wrong type for field")
	ErrUnknownCollection = errors.New("unknown collection kind")
	ErrIndexOutOfRange   = errors.New("collection index out of range")

	ErrNotOpen     = errors.New("no add dialog is open")
	ErrScratchKind = errors.New("scratch entry kind does not match the open dialog")

	ErrNothingSelected = errors.New("no avatar selected")
	ErrUploadInFlight  = errors.New("avatar upload already in progress")
	ErrUploadFailed    = errors.New("avatar upload failed")

	ErrLoginRequired = errors.New("login required")
	ErrSaveInFlight  = errors.New("profile save already in progress")
	ErrSaveFailed    = errors.New("profile save failed")
)
