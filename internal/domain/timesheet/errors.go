package timesheet

import "errors"

var ErrInvalidDateFormat = errors.New("Invalid date format. Use YYYY-MM-DD.")
