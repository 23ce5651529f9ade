package clubs

import "errors"

// ErrPermissionDenied → routes map it to 403.
var ErrPermissionDenied = errors.New("permission denied")

// ValidationError marks input problems the API should report as 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
