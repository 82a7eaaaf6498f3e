package handler

import (
	"net/http"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
)

// MaterialResponse describes one entry of the material catalog
type MaterialResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	IsItem      bool   `json:"is_item"`
}

// HandleListMaterials returns the material catalog so clients can pick a valid item base
func HandleListMaterials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		materials := domain.Materials()
		out := make([]MaterialResponse, 0, len(materials))
		for _, m := range materials {
			out = append(out, MaterialResponse{
				Name:        m.String(),
				DisplayName: m.DisplayName(),
				IsItem:      m.IsItem(),
			})
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: out})
	}
}
