package sheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// The error taxonomy is flat: every failure is either a lookup miss, a bad
// input, an authorisation problem or a timeout, wrapped with enough context
// to identify the operation that failed.
var (
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
	ErrWorksheetNotFound   = errors.New("worksheet not found")
	ErrCellNotFound        = errors.New("cell not found")
	ErrRangeNotFound       = errors.New("named range not found")
	ErrChartNotFound       = errors.New("chart not found")
	ErrFolderNotFound      = errors.New("folder not found")
	ErrNoValidKeyFound     = errors.New("no valid spreadsheet key found in URL")
	ErrAuthentication      = errors.New("authentication/authorization error")
	ErrTimeout             = errors.New("request timed out")
	ErrNotLinked           = errors.New("not linked to a worksheet")
	ErrBatchMode           = errors.New("operation not supported in batch mode")
)

// wrapAPI folds an API error into the taxonomy, keeping the underlying
// error in the chain.
func wrapAPI(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w (%v)", op, ErrTimeout, err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w (%v)", op, ErrSpreadsheetNotFound, err)

		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%s: %w (%v)", op, ErrAuthentication, err)

		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			return fmt.Errorf("%s: %w (%v)", op, ErrTimeout, err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// retryable returns true for responses that indicate a transient quota or
// availability problem.
func retryable(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests || gerr.Code == http.StatusServiceUnavailable
	}

	return false
}
