package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrIngestionShape is returned when the payload is valid JSON but not an array
	ErrIngestionShape = errors.New("ingestion: payload is not an array")

	// ErrIngestionTransport is returned on network failures and unparsable payloads
	ErrIngestionTransport = errors.New("ingestion: transport failure")

	errLoadNotFinished = errors.New("ingestion: not finished")
)

// =============================================================================
// Types
// =============================================================================

type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusReady   LoadStatus = "ready"
	StatusFailed  LoadStatus = "failed"
)

// snapshot is published once per state change and never mutated afterwards.
type snapshot struct {
	status   LoadStatus
	doctors  []entity.Doctor
	err      error
	loadedAt time.Time
}

// DoctorStore owns the authoritative doctor list.
//
// The list is ingested exactly once (the first Load call wins) and is
// read-only afterwards, so readers go through an atomic pointer without locking.
type DoctorStore struct {
	source  repository.DoctorSourceRepository
	log     *logrus.Logger
	metrics *metrics.DirectoryMetrics

	once    sync.Once
	current atomic.Pointer[snapshot]
	done    chan struct{}
}

// =============================================================================
// Constructor
// =============================================================================

func NewDoctorStore(source repository.DoctorSourceRepository, log *logrus.Logger, m *metrics.DirectoryMetrics) *DoctorStore {
	s := &DoctorStore{
		source:  source,
		log:     log,
		metrics: m,
		done:    make(chan struct{}),
	}
	s.current.Store(&snapshot{status: StatusLoading})
	return s
}

// =============================================================================
// Public Methods
// =============================================================================

// Load fetches and normalizes the directory. Only the first call performs the
// request; every call returns the outcome of that first load.
func (s *DoctorStore) Load(ctx context.Context) error {
	s.once.Do(func() {
		defer close(s.done)
		s.current.Store(s.ingest(ctx))
	})
	return s.current.Load().err
}

// Done is closed once the first load has settled.
func (s *DoctorStore) Done() <-chan struct{} {
	return s.done
}

func (s *DoctorStore) Status() LoadStatus {
	return s.current.Load().status
}

// Doctors returns the ingested list. Callers must treat it as read-only.
func (s *DoctorStore) Doctors() []entity.Doctor {
	return s.current.Load().doctors
}

// Err returns the ingestion error, errLoadNotFinished while loading and nil when ready.
func (s *DoctorStore) Err() error {
	snap := s.current.Load()
	if snap.status == StatusLoading {
		return errLoadNotFinished
	}
	return snap.err
}

func (s *DoctorStore) LoadedAt() time.Time {
	return s.current.Load().loadedAt
}

// =============================================================================
// Private Helper Methods
// =============================================================================

func (s *DoctorStore) ingest(ctx context.Context) *snapshot {
	s.log.Info("Starting doctor directory ingestion...")
	startTime := time.Now()

	raw, err := s.source.FetchAll(ctx)
	if err != nil {
		return s.fail(fmt.Errorf("%w: %v", ErrIngestionTransport, err))
	}

	doctors, err := s.decodeDoctors(raw)
	if err != nil {
		return s.fail(err)
	}

	for i := range doctors {
		doctors[i].Normalize()
	}

	s.metrics.ObserveIngestion(metrics.OutcomeSuccess, len(doctors))
	s.log.Infof("Doctor directory ingestion completed: %d doctors in %v", len(doctors), time.Since(startTime))

	return &snapshot{
		status:   StatusReady,
		doctors:  doctors,
		loadedAt: time.Now(),
	}
}

func (s *DoctorStore) fail(err error) *snapshot {
	kind := metrics.OutcomeTransport
	if errors.Is(err, ErrIngestionShape) {
		kind = metrics.OutcomeShape
	}
	s.metrics.ObserveIngestion(kind, 0)
	s.log.WithField("kind", kind).Errorf("Failed to ingest doctor directory: %+v", err)

	return &snapshot{
		status:   StatusFailed,
		err:      err,
		loadedAt: time.Now(),
	}
}

// decodeDoctors checks that raw is a JSON array of objects and decodes its elements.
// A field of the wrong type is left at its zero value instead of failing the record.
func (s *DoctorStore) decodeDoctors(raw []byte) ([]entity.Doctor, error) {
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid JSON payload", ErrIngestionTransport)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: got %s", ErrIngestionShape, describeJSON(trimmed))
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, fmt.Errorf("%w: decode doctors: %v", ErrIngestionTransport, err)
	}

	doctors := make([]entity.Doctor, len(elements))
	for i, el := range elements {
		if len(el) == 0 || el[0] != '{' {
			return nil, fmt.Errorf("%w: doctor %d is %s", ErrIngestionTransport, i, describeJSON(el))
		}

		var typeErr *json.UnmarshalTypeError
		if err := json.Unmarshal(el, &doctors[i]); err != nil {
			if !errors.As(err, &typeErr) {
				return nil, fmt.Errorf("%w: decode doctor %d: %v", ErrIngestionTransport, i, err)
			}
			s.log.WithField("field", typeErr.Field).Debugf("Ignoring malformed field on doctor %d", i)
		}
	}
	return doctors, nil
}

func describeJSON(b []byte) string {
	if len(b) == 0 {
		return "empty payload"
	}
	switch b[0] {
	case '{':
		return "object"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}
