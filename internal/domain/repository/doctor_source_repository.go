package repository

import "context"

// DoctorSourceRepository retrieves the raw doctor payload from the upstream API.
// Implementations only deal with transport; decoding belongs to the caller.
type DoctorSourceRepository interface {
	FetchAll(ctx context.Context) ([]byte, error)
}
