package planning

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aristath/fundplan/internal/domain"
	"github.com/aristath/fundplan/internal/modules/allocation"
	"github.com/vmihailenco/msgpack/v5"
)

// shareCodeVersion prefixes every share code so the payload layout can
// change later without old codes decoding into garbage.
const shareCodeVersion = "v1"

// SharedPlanRequest is the payload carried inside a share code. It holds the
// inputs to plan generation rather than the generated plan, so a resolved
// code always reflects current engine behavior.
type SharedPlanRequest struct {
	Profile domain.InvestorProfile `json:"profile"`
	Options allocation.PlanOptions `json:"options"`
}

// EncodeShareCode packs a plan request into an opaque URL-safe token
func EncodeShareCode(req SharedPlanRequest) (string, error) {
	payload, err := msgpack.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}
	return shareCodeVersion + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

// DecodeShareCode unpacks a token produced by EncodeShareCode
func DecodeShareCode(code string) (SharedPlanRequest, error) {
	var req SharedPlanRequest

	version, encoded, found := strings.Cut(code, ".")
	if !found {
		return req, fmt.Errorf("malformed share code")
	}
	if version != shareCodeVersion {
		return req, fmt.Errorf("unsupported share code version: %q", version)
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return req, fmt.Errorf("decode share code: %w", err)
	}
	if err := msgpack.Unmarshal(payload, &req); err != nil {
		return req, fmt.Errorf("unpack share code: %w", err)
	}

	return req, nil
}
