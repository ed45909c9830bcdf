package cmdutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"nathanbeddoewebdev/njalla/internal/domain"
	regdomain "nathanbeddoewebdev/njalla/internal/registrar/domain"
	"nathanbeddoewebdev/njalla/internal/rpc"

	"github.com/spf13/cobra"
)

// Error kinds reported in the error JSON.
const (
	KindAPI          = "api"
	KindTransport    = "transport"
	KindProtocol     = "protocol"
	KindInvalidInput = "invalid_input"
	KindNotFound     = "not_found"
	KindConfig       = "config"
	KindTaskFailed   = "task_failed"
	KindAborted      = "aborted"
	KindOther        = "error"
)

// ErrAborted is returned when the user declines a confirmation prompt.
var ErrAborted = errors.New("aborted by user")

// ErrorBody is the object printed under "error" when a command fails.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Classify maps err onto an ErrorBody. API errors keep the server's code
// and message verbatim.
func Classify(err error) ErrorBody {
	var (
		apiErr       *rpc.APIError
		transportErr *rpc.TransportError
		protocolErr  *rpc.ProtocolError
	)

	switch {
	case errors.As(err, &apiErr):
		return ErrorBody{Kind: KindAPI, Code: string(apiErr.Code), Message: apiErr.Message}
	case errors.As(err, &transportErr):
		body := ErrorBody{Kind: KindTransport, Message: err.Error()}
		if transportErr.StatusCode != 0 {
			body.Code = strconv.Itoa(transportErr.StatusCode)
		}
		return body
	case errors.As(err, &protocolErr):
		return ErrorBody{Kind: KindProtocol, Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return ErrorBody{Kind: KindInvalidInput, Message: err.Error()}
	case errors.Is(err, ErrConfig):
		return ErrorBody{Kind: KindConfig, Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return ErrorBody{Kind: KindNotFound, Message: err.Error()}
	case errors.Is(err, regdomain.ErrTaskFailed):
		return ErrorBody{Kind: KindTaskFailed, Message: err.Error()}
	case errors.Is(err, ErrAborted):
		return ErrorBody{Kind: KindAborted, Message: err.Error()}
	default:
		return ErrorBody{Kind: KindOther, Message: err.Error()}
	}
}

// WriteError prints err as {"error":{...}} on a single line.
func WriteError(w io.Writer, err error) {
	data, mErr := json.Marshal(struct {
		Error ErrorBody `json:"error"`
	}{Classify(err)})
	if mErr != nil {
		fmt.Fprintf(w, "{\"error\":{\"kind\":%q,\"message\":%q}}\n", KindOther, err.Error())
		return
	}
	fmt.Fprintln(w, string(data))
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
}

// FlagError marks flag parsing failures as invalid input.
func FlagError(_ *cobra.Command, err error) error {
	return invalidInput(err)
}

// ExactArgs is cobra.ExactArgs with failures classified as invalid input.
func ExactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

// RangeArgs is cobra.RangeArgs with failures classified as invalid input.
func RangeArgs(min, max int) cobra.PositionalArgs {
	return wrapArgs(cobra.RangeArgs(min, max))
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return invalidInput(err)
		}
		return nil
	}
}
