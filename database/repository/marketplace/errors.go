package marketplaceRepo

import "errors"

// ErrProviderNotFound is returned by operations that require an existing provider.
var ErrProviderNotFound = errors.New("provider not found")
