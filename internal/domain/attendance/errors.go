package attendance

import "errors"

var (
	ErrInvalidStatus = errors.New("status must be Present or Absent")
	ErrInvalidDate   = errors.New("invalid date format, use YYYY-MM-DD")
)
