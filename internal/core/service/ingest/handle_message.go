package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"training-reels/internal/core/domain"
)

// HandleMessage starts an ingest for every created object of a bucket notification.
// Rejected objects are acknowledged. A payload that is not a bucket notification yields
// ErrMalformedEvent; storage and ledger failures are returned for redelivery.
func (s *ingestService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.MinIOEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)
	}
	if len(event.Records) == 0 {
		return fmt.Errorf("%w: no records", domain.ErrMalformedEvent)
	}

	var errs []error
	for _, notif := range event.Records {
		if !strings.HasPrefix(notif.EventName, "s3:ObjectCreated:") {
			s.logger.Debug("ignoring bucket event", "eventtype", notif.EventName)
			continue
		}

		key, err := url.QueryUnescape(notif.S3.Object.Key)
		if err != nil {
			s.logger.Warn("undecodable object key", "key", notif.S3.Object.Key, "error", err)
			continue
		}

		s.logger.Info("handling event", "eventtype", notif.EventName, "key", key, "size", notif.S3.Object.Size)

		_, err = s.Ingest(ctx, key)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrInvalidFileType), errors.Is(err, domain.ErrFileSizeTooBig), errors.Is(err, domain.ErrEmptyFile):
			s.logger.Warn("object rejected", "key", key, "error", err)
		case errors.Is(err, domain.ErrAlreadyIngested):
			s.logger.Info("object already ingested", "key", key)
		default:
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
