package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/dastudio/da-assistant/internal/domain"

	"github.com/rs/zerolog/log"
)

// Recognizer turns free-form user text into intents and executes them.
// Recognition is stateless and side-effect free; execution runs the real
// handler with an authenticated user. The split lets clients preview the
// action a message would trigger before committing to it.
type Recognizer struct {
	classifier *Classifier
	registry   *Registry
}

type RecognizerDependencies struct {
	Classifier *Classifier
	Registry   *Registry
}

func NewRecognizer(deps RecognizerDependencies) *Recognizer {
	return &Recognizer{
		classifier: deps.Classifier,
		registry:   deps.Registry,
	}
}

// RecognizeIntent classifies the text, extracts entities for the winning
// label and builds the conversational Intent. It never fails: any internal
// problem degrades to the fallback intent.
func (r *Recognizer) RecognizeIntent(text string, convCtx map[string]string) (intent domain.Intent) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Any("panic", rec).Msg("Recognition failed, degrading to fallback intent")
			intent = r.fallbackIntent()
		}
	}()

	trimmed := strings.TrimSpace(text)

	ranked := r.classifier.Classify(strings.ToLower(trimmed))
	if len(ranked) == 0 {
		return r.fallbackIntent()
	}

	// the top-ranked label is always accepted; there is deliberately no
	// confidence cutoff here
	label := ranked[0].Label

	rule, ok := r.registry.Get(label)
	if !ok {
		return r.fallbackIntent()
	}

	entities := map[string]string{}
	if rule.Extract != nil {
		entities = rule.Extract(trimmed)
	}

	// slots filled in earlier turns of the same intent carry over through
	// the conversation context
	if convCtx["intent"] == label {
		for _, field := range rule.Required {
			if entities[field] == "" && convCtx[field] != "" {
				entities[field] = convCtx[field]
			}
		}
	}

	var missing []string
	for _, field := range rule.Required {
		if entities[field] == "" {
			missing = append(missing, field)
		}
	}

	updated := map[string]string{"intent": label}
	for k, v := range entities {
		updated[k] = v
	}

	if len(missing) > 0 {
		return domain.Intent{
			Name:             label,
			Response:         rule.Prompt(missing),
			Actions:          []domain.Action{},
			UpdatedContext:   updated,
			RequiresFollowup: true,
		}
	}

	actions := []domain.Action{}
	if rule.Actions != nil {
		actions = rule.Actions(entities)
	}

	return domain.Intent{
		Name:           label,
		Response:       rule.Respond(entities),
		Actions:        actions,
		UpdatedContext: updated,
	}
}

// ExecuteIntent looks up and runs the handler registered for the intent.
// Unknown intents fall through to the fallback handler and a panicking
// handler is converted into a failed result; execution-level problems never
// escape to the caller.
func (r *Recognizer) ExecuteIntent(ctx context.Context, name string, params map[string]any, user domain.User, convCtx map[string]string) (result domain.IntentResult) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("intent", name).Any("panic", rec).Msg("Intent handler panicked")
			result = domain.IntentResult{
				Message: fmt.Sprintf("An error occurred: %v", rec),
				Success: false,
			}
		}
	}()

	handler := r.handlerFor(name)

	if params == nil {
		params = map[string]any{}
	}

	return handler(ctx, params, user, convCtx)
}

func (r *Recognizer) handlerFor(name string) HandlerFunc {
	if rule, ok := r.registry.Get(name); ok && rule.Handler != nil {
		return rule.Handler
	}

	if rule, ok := r.registry.Get(domain.IntentSystemFallback); ok && rule.Handler != nil {
		return rule.Handler
	}

	// the registry always carries a fallback handler; this path only
	// exists so a miswired registry fails loudly in tests
	return func(context.Context, map[string]any, domain.User, map[string]string) domain.IntentResult {
		return domain.IntentResult{Message: "No handler registered.", Success: false}
	}
}

func (r *Recognizer) fallbackIntent() domain.Intent {
	response := "I'm sorry, I didn't quite get that. Ask me for \"help\" to see what I can do."
	if rule, ok := r.registry.Get(domain.IntentSystemFallback); ok {
		response = rule.Respond(nil)
	}

	return domain.Intent{
		Name:           domain.IntentSystemFallback,
		Response:       response,
		Actions:        []domain.Action{},
		UpdatedContext: map[string]string{"intent": domain.IntentSystemFallback},
	}
}
