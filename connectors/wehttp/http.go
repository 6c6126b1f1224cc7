package wehttp

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/weegigs/wee-store-go/we"
)

type HandlerOption[S any, A any] func(service *httpService[S, A])

func Logger[S any, A any](log *zerolog.Logger) HandlerOption[S, A] {
	return func(service *httpService[S, A]) {
		service.log = log
	}
}

func Serializer[S any, A any](serializer SnapshotSerializer[S]) HandlerOption[S, A] {
	return func(service *httpService[S, A]) {
		service.encoder = ResourceEncoder[S]{Serializer: serializer}
	}
}

// NewHandler exposes a container over HTTP:
//
//	GET  /state    current state as a resource
//	POST /actions  decode a we.RemoteAction, dispatch it and return the new state
//	GET  /events   server-sent events, the current state then one "state" frame
//	               per committed dispatch, in commit order
//
// Dispatches from concurrent requests are serialised by the handler.
func NewHandler[S any, A any](container we.Container[S, A], decoder we.ActionDecoder[A], options ...HandlerOption[S, A]) http.Handler {
	service := &httpService[S, A]{container: container, decoder: decoder, encoder: ResourceEncoder[S]{}}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("GET", "/state", service.getState())
	r.Method("POST", "/actions", service.dispatchAction())
	r.Method("GET", "/events", service.streamEvents())

	return otelhttp.NewHandler(r, "we-http")
}

type httpService[S any, A any] struct {
	log       *zerolog.Logger
	container we.Container[S, A]
	decoder   we.ActionDecoder[A]
	encoder   ResourceEncoder[S]

	dispatch sync.Mutex
}

func (service *httpService[S, A]) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.respond(w, r, service.container.Snapshot())
	}
}

func (service *httpService[S, A]) dispatchAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if mediaType != "application/json" || err != nil {
			service.log.Info().Err(we.InvalidEncoding("application/json", contentType)).Msg("rejected action")
			http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var remote we.RemoteAction
		if err := json.UnmarshalContext(r.Context(), body, &remote); err != nil {
			service.log.Info().Err(err).Msg("failed to unmarshal action")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		action, err := service.decoder.Decode(r.Context(), remote)
		if err != nil {
			service.log.Info().Err(err).Str("action", remote.ActionType.String()).Msg("failed to decode action")
			http.Error(w, "invalid action", http.StatusBadRequest)
			return
		}

		service.dispatch.Lock()
		err = service.container.Dispatch(r.Context(), action)
		snapshot := service.container.Snapshot()
		service.dispatch.Unlock()

		if err != nil {
			service.log.Info().Err(err).Str("action", remote.ActionType.String()).Msg("failed to dispatch action")
			if errors.Is(err, we.ErrDispatchInProgress) {
				http.Error(w, "dispatch in progress", http.StatusConflict)
				return
			}

			http.Error(w, "action rejected", http.StatusUnprocessableEntity)
			return
		}

		service.respond(w, r, snapshot)
	}
}

func (service *httpService[S, A]) streamEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		// observers run on the dispatching goroutine, so they only queue the
		// committed snapshot and signal the writer
		var lk sync.Mutex
		var pending []we.Snapshot[S]
		changed := make(chan struct{}, 1)
		unsubscribe := service.container.Subscribe(func() {
			snapshot := service.container.Snapshot()

			lk.Lock()
			pending = append(pending, snapshot)
			lk.Unlock()

			select {
			case changed <- struct{}{}:
			default:
			}
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		snapshots := []we.Snapshot[S]{service.container.Snapshot()}
		for {
			for _, snapshot := range snapshots {
				if err := service.writeEvent(w, snapshot); err != nil {
					service.log.Info().Err(err).Msg("failed to write state event")
					return
				}
			}
			flusher.Flush()

			select {
			case <-r.Context().Done():
				return
			case <-changed:
			}

			lk.Lock()
			snapshots, pending = pending, nil
			lk.Unlock()
		}
	}
}

func (service *httpService[S, A]) writeEvent(w io.Writer, snapshot we.Snapshot[S]) error {
	resource, err := service.encoder.Encode(snapshot)
	if err != nil {
		return err
	}

	data, err := json.Marshal(resource)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: state\ndata: %s\n\n", data)
	return err
}

func (service *httpService[S, A]) respond(w http.ResponseWriter, r *http.Request, snapshot we.Snapshot[S]) {
	resource, err := service.encoder.Encode(snapshot)
	if err != nil {
		service.log.Info().Err(err).Msg("failed to encode state")
		http.Error(w, "failed to encode state", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, resource)
}
