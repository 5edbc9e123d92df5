// Copyright (c) 2026 ApiChistes. All rights reserved.

package joke

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unidentifiedchris/topicos/internal/platform/apperr"
	requestutil "github.com/unidentifiedchris/topicos/internal/platform/request"
	"github.com/unidentifiedchris/topicos/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes builds the /chistes route tree.
//
// The static /Propio subtree takes precedence over the {tipo} wildcard, so
// GET /chistes/Propio is registered explicitly inside it and routed to the
// same random fetch with the Propio source.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{tipo}", handler.getRandom)

	router.Route("/Propio", func(propio chi.Router) {
		propio.Get("/", handler.getRandomOwn)
		propio.Post("/", handler.createJoke)

		propio.Route("/id/{id}", func(byID chi.Router) {
			byID.Get("/", handler.getJoke)
			byID.Put("/", handler.updateJoke)
			byID.Delete("/", handler.deleteJoke)
		})

		propio.Get("/op/count/ca/{categoria}", handler.countByCategory)
		propio.Get("/op/all/pu/{puntaje}", handler.listByScore)
	})

	return router
}

func (handler *Handler) getRandom(writer http.ResponseWriter, request *http.Request) {
	source := Source(requestutil.Param(request, "tipo"))

	j, err := handler.service.FetchRandom(request.Context(), source)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, j)
}

func (handler *Handler) getRandomOwn(writer http.ResponseWriter, request *http.Request) {
	j, err := handler.service.FetchRandom(request.Context(), SourcePropio)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, j)
}

func (handler *Handler) createJoke(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	j, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, j)
}

func (handler *Handler) getJoke(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	j, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, j)
}

func (handler *Handler) updateJoke(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	j, err := handler.service.UpdateByID(request.Context(), id, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, j)
}

func (handler *Handler) deleteJoke(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteByID(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Empty(writer)
}

func (handler *Handler) countByCategory(writer http.ResponseWriter, request *http.Request) {
	category := requestutil.Param(request, "categoria")

	total, err := handler.service.CountByCategory(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Result(writer, total)
}

func (handler *Handler) listByScore(writer http.ResponseWriter, request *http.Request) {
	scoreParam := requestutil.Param(request, "puntaje")

	// Non-numeric scores are out of range by definition.
	score, err := strconv.Atoi(scoreParam)
	if err != nil {
		respond.Error(writer, request, apperr.Invalid(MsgScoreOutOfRange))
		return
	}

	jokes, err := handler.service.ListByScore(request.Context(), score)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Result(writer, jokes)
}
