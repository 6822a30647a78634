package domain

import "errors"

var (
	ErrInvalidAttributes    = errors.New("invalid artwork attributes")
	ErrModelNotLoaded       = errors.New("prediction model not loaded")
	ErrImageSupportDisabled = errors.New("image processing not available")
	ErrUnreadableImage      = errors.New("image could not be decoded")
	ErrFeatureConstruction  = errors.New("feature construction failed")
	ErrInvalidScore         = errors.New("model produced a non-finite score")
)
