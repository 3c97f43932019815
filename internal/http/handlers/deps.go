package handlers

import (
	"github.com/gTurboflex/supermarket-console/internal/catalog"
	"github.com/gTurboflex/supermarket-console/internal/session"
)

type Deps struct {
	AuthHandler        *AuthHandler
	ProductHandler     *ProductHandler
	CompareHandler     *CompareHandler
	SupermarketHandler *SupermarketHandler
	InfoHandler        *InfoHandler
}

func NewDeps(api *catalog.Client, sess *session.Session) *Deps {
	return &Deps{
		AuthHandler:        &AuthHandler{API: api, Session: sess},
		ProductHandler:     &ProductHandler{API: api, Session: sess},
		CompareHandler:     &CompareHandler{API: api},
		SupermarketHandler: &SupermarketHandler{API: api, Session: sess},
		InfoHandler:        &InfoHandler{API: api},
	}
}
