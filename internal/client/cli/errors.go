package cli

import (
	"errors"

	"github.com/dmitrijs2005/calcfront/internal/client/api"
	"github.com/dmitrijs2005/calcfront/internal/client/services"
)

// errorText picks the message shown for a failed action: structured server
// messages verbatim, local validation messages as-is, and the view's
// fallback text for everything else (transport failures included).
func errorText(err error, fallback string) string {
	if msg := api.MessageOf(err); msg != "" {
		return msg
	}
	switch {
	case errors.Is(err, services.ErrFirstOperandRequired),
		errors.Is(err, services.ErrSecondOperandRequired),
		errors.Is(err, services.ErrUnknownOperationType):
		return err.Error()
	}

	var pageErr *services.PageRangeError
	var missingErr *services.RecordNotOnPageError
	if errors.As(err, &pageErr) || errors.As(err, &missingErr) {
		return err.Error()
	}
	return fallback
}
