package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/CustomItemEffects_Go/internal/item"
	"github.com/osse101/CustomItemEffects_Go/internal/logger"
)

// ItemCatalog is the read side of the item registry
type ItemCatalog interface {
	Items() []*item.CustomItem
	Lookup(name string) (*item.CustomItem, bool)
}

// ItemResponse describes one custom item
type ItemResponse struct {
	Name          string   `json:"name"`
	DisplayName   string   `json:"display_name"`
	Material      string   `json:"material"`
	MaterialName  string   `json:"material_name"`
	CooldownMs    int64    `json:"cooldown_ms"`
	Lore          []string `json:"lore"`
	Tagged        bool     `json:"tagged"`
	TrackedActors int      `json:"tracked_actors"`
}

// CooldownResponse describes one actor's cooldown on one item
type CooldownResponse struct {
	Item        string     `json:"item"`
	ActorID     uuid.UUID  `json:"actor_id"`
	OnCooldown  bool       `json:"on_cooldown"`
	RemainingMs int64      `json:"remaining_ms"`
	LastUsed    *time.Time `json:"last_used,omitempty"`
}

// actorRef identifies an actor by ID alone, enough for cooldown lookups
type actorRef uuid.UUID

func (a actorRef) UniqueID() uuid.UUID { return uuid.UUID(a) }
func (a actorRef) Name() string        { return uuid.UUID(a).String() }

func newItemResponse(ci *item.CustomItem) ItemResponse {
	return ItemResponse{
		Name:          ci.PlainName(),
		DisplayName:   ci.DisplayName(),
		Material:      ci.Material().String(),
		MaterialName:  ci.Material().DisplayName(),
		CooldownMs:    ci.CooldownMillis(),
		Lore:          ci.Lore(),
		Tagged:        ci.Tagged(),
		TrackedActors: ci.TrackedActors(),
	}
}

func newCooldownResponse(ci *item.CustomItem, actor actorRef) CooldownResponse {
	resp := CooldownResponse{
		Item:        ci.PlainName(),
		ActorID:     actor.UniqueID(),
		OnCooldown:  ci.IsOnCooldown(actor),
		RemainingMs: ci.RemainingCooldown(actor).Milliseconds(),
	}
	if last, ok := ci.LastUsed(actor); ok {
		resp.LastUsed = &last
	}
	return resp
}

// HandleListItems returns every registered item
func HandleListItems(catalog ItemCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := catalog.Items()
		out := make([]ItemResponse, 0, len(items))
		for _, ci := range items {
			out = append(out, newItemResponse(ci))
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: out})
	}
}

// HandleGetItem returns a single item by name
func HandleGetItem(catalog ItemCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ci, ok := catalog.Lookup(chi.URLParam(r, ParamItemName))
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFound)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: newItemResponse(ci)})
	}
}

// HandleGetCooldown reports whether an actor is on cooldown for an item
func HandleGetCooldown(catalog ItemCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ci, actor, ok := resolveItemAndActor(w, r, catalog)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: newCooldownResponse(ci, actor)})
	}
}

// HandleResetCooldown clears an actor's cooldown for an item
func HandleResetCooldown(catalog ItemCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ci, actor, ok := resolveItemAndActor(w, r, catalog)
		if !ok {
			return
		}

		ci.ResetCooldown(actor)
		logger.FromContext(r.Context()).Info(LogMsgCooldownReset, "item", ci.PlainName(), "actorID", actor.UniqueID())

		respondJSON(w, http.StatusOK, DataResponse{
			Message: "Cooldown reset",
			Data:    newCooldownResponse(ci, actor),
		})
	}
}

func resolveItemAndActor(w http.ResponseWriter, r *http.Request, catalog ItemCatalog) (*item.CustomItem, actorRef, bool) {
	raw := chi.URLParam(r, ParamActorID)
	if err := GetValidator().ValidateVar(raw, "required,uuid"); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidActorID)
		return nil, actorRef{}, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidActorID)
		return nil, actorRef{}, false
	}

	ci, ok := catalog.Lookup(chi.URLParam(r, ParamItemName))
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgItemNotFound)
		return nil, actorRef{}, false
	}
	return ci, actorRef(id), true
}
