// Package planner sequences the relay pipeline: validate, build prompt,
// invoke or fall back to mock, normalize. It holds no state across calls;
// every request is independent.
package planner

import (
	"bytes"
	"context"
	"strings"
	"time"

	"itinerary-relay/internal/common/errors"
	"itinerary-relay/internal/common/logger"
	"itinerary-relay/internal/common/metrics"
	"itinerary-relay/internal/itinerary"
	"itinerary-relay/internal/itinerary/invoker"
	"itinerary-relay/internal/itinerary/normalize"
	"itinerary-relay/internal/itinerary/prompt"
)

type Planner struct {
	invoker    invoker.Invoker
	fallback   invoker.Invoker
	normalizer *normalize.Normalizer
	log        logger.Logger
}

// New wires the pipeline around an invocation strategy chosen at startup.
// The mock fallback is always present; it engages on the generate path when
// the primary invoker fails.
func New(inv invoker.Invoker, norm *normalize.Normalizer, log logger.Logger) *Planner {
	return &Planner{
		invoker:    inv,
		fallback:   invoker.NewMock(),
		normalizer: norm,
		log:        log,
	}
}

// Generate produces a fresh itinerary for a trip request. A failing invoker
// never fails the request: the mock fallback serves instead. A normalizer
// failure does fail the request; defaulting a malformed itinerary would be
// worse than an explicit error.
func (p *Planner) Generate(ctx context.Context, req itinerary.GenerateRequest) (*itinerary.Itinerary, error) {
	start := time.Now()
	defer func() {
		metrics.RelayRequestDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	}()

	if strings.TrimSpace(req.UserInput.Destination) == "" {
		metrics.RelayRequests.WithLabelValues("generate", "invalid").Inc()
		return nil, errors.NewInvalidRequestError("Invalid request: missing required fields")
	}

	log := p.log.WithFields(map[string]interface{}{
		"sessionId":   req.SessionID,
		"destination": req.UserInput.Destination,
		"days":        req.UserInput.NumberOfDays,
	})

	text, err := p.invoke(ctx, prompt.BuildGenerate(req.UserInput))
	if err != nil {
		log.WithError(err).Warn("model invocation failed, falling back to mock data", map[string]interface{}{
			"strategy": p.invoker.Name(),
		})
		metrics.MockFallbacks.WithLabelValues(string(errors.CodeOf(err))).Inc()

		text, err = p.fallback.Invoke(ctx, prompt.BuildGenerate(req.UserInput))
		if err != nil {
			metrics.RelayRequests.WithLabelValues("generate", "error").Inc()
			return nil, err
		}
	}

	it, err := p.normalizer.Parse(text)
	if err != nil {
		log.WithError(err).Error("failed to parse model response", nil)
		metrics.RelayRequests.WithLabelValues("generate", "error").Inc()
		return nil, err
	}

	log.Info("itinerary generated", map[string]interface{}{
		"itineraryId": it.ID,
		"activities":  len(it.Activities),
	})
	metrics.RelayRequests.WithLabelValues("generate", "success").Inc()
	return it, nil
}

// Customize rewrites an existing itinerary per the user's free-text request.
// There is no mock fallback here: inventing a modification the model never
// made would silently discard the user's itinerary.
func (p *Planner) Customize(ctx context.Context, req itinerary.CustomizeRequest) (*itinerary.Itinerary, error) {
	start := time.Now()
	defer func() {
		metrics.RelayRequestDuration.WithLabelValues("customize").Observe(time.Since(start).Seconds())
	}()

	if emptyRawMessage(req.Itinerary) || strings.TrimSpace(req.CustomizationRequest) == "" {
		metrics.RelayRequests.WithLabelValues("customize", "invalid").Inc()
		return nil, errors.NewInvalidRequestError("Invalid request: missing itinerary or customization request")
	}

	log := p.log.WithFields(map[string]interface{}{
		"sessionId": req.SessionID,
	})

	text, err := prompt.BuildCustomize(req)
	if err != nil {
		metrics.RelayRequests.WithLabelValues("customize", "invalid").Inc()
		return nil, errors.NewInvalidRequestError("Invalid request: itinerary is not serializable")
	}

	raw, err := p.invoke(ctx, text)
	if err != nil {
		log.WithError(err).Error("model invocation failed", map[string]interface{}{
			"strategy": p.invoker.Name(),
		})
		metrics.RelayRequests.WithLabelValues("customize", "error").Inc()
		return nil, err
	}

	it, err := p.normalizer.Parse(raw)
	if err != nil {
		log.WithError(err).Error("failed to parse model response", nil)
		metrics.RelayRequests.WithLabelValues("customize", "error").Inc()
		return nil, err
	}

	log.Info("itinerary customized", map[string]interface{}{
		"itineraryId": it.ID,
	})
	metrics.RelayRequests.WithLabelValues("customize", "success").Inc()
	return it, nil
}

func (p *Planner) invoke(ctx context.Context, promptText string) (string, error) {
	text, err := p.invoker.Invoke(ctx, promptText)
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.ModelInvocations.WithLabelValues(p.invoker.Name(), outcome).Inc()
	return text, err
}

func emptyRawMessage(raw []byte) bool {
	trimmed := string(bytes.TrimSpace(raw))
	return trimmed == "" || trimmed == "null"
}
