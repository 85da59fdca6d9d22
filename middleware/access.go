package middleware

import (
	"accommodation_manager/config"
	"accommodation_manager/constants"
	"accommodation_manager/utils"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

type accessCheckRequest struct {
	Token     string `json:"token"`
	RightName string `json:"rightName"`
}

// AccessGate checks a required capability against the external
// authorization service. Its mode is fixed when it is constructed; in
// disabled mode every request passes through, a choice logged loudly at
// startup rather than inferred silently per request.
type AccessGate struct {
	mode    config.GateMode
	baseURL string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
}

func NewAccessGate(cfg config.AppConfig) *AccessGate {
	return &AccessGate{
		mode:    cfg.GateMode,
		baseURL: strings.TrimRight(cfg.AuthServiceURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		cb:      circuitBreaker("accessGate"),
	}
}

func circuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Warnf("Circuit Breaker '%s' changed from '%s' to '%s'", name, from, to)
			},
		},
	)
}

// Require returns the gate middleware for one capability name. A single
// synchronous call per request, no retry; the handler behind it is never
// invoked on failure.
func (g *AccessGate) Require(rightName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if g.mode == config.GateDisabled {
			return c.Next()
		}

		auth := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.TOKEN_MISSING_OR_MALFORMED)
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		result, err := g.cb.Execute(func() (interface{}, error) {
			body, err := json.Marshal(accessCheckRequest{Token: token, RightName: rightName})
			if err != nil {
				return nil, err
			}
			req, err := http.NewRequest(http.MethodPost, g.baseURL+"/access/check", bytes.NewReader(body))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := g.client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			io.Copy(io.Discard, resp.Body)

			// A denial is a valid answer from the service, not a failure,
			// so it must not trip the breaker.
			return resp.StatusCode, nil
		})
		if err != nil {
			log.Warn("access check failed: ", err)
			return utils.ErrorResponseWithDetails(c, fiber.StatusUnauthorized, constants.AUTHORIZATION_FAILED, err)
		}

		status := result.(int)
		if status >= 200 && status < 300 {
			return c.Next()
		}
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCESS_DENIED)
	}
}
