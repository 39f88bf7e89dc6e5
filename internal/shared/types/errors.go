package types

import "errors"

var (
	ErrNoPeriods          = errors.New("projection payload defines no periods")
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrInvalidSourceURI   = errors.New("invalid object URI, expected s3://bucket/key")
	ErrPeriodNotFound     = errors.New("period not found in projections")
	ErrObjectStoreMissing = errors.New("no object store configured for s3:// sources")
)
