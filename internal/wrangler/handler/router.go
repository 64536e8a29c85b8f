package handler

import "github.com/julienschmidt/httprouter"

const (
	PathParse           = "/api/v1/phone-numbers/parse"
	PathFormat          = "/api/v1/phone-numbers/format"
	PathCompare         = "/api/v1/phone-numbers/compare"
	PathPack            = "/api/v1/phone-numbers/pack"
	PathPresets         = "/api/v1/presets"
	PathDefaultAreaCode = "/api/v1/default-area-code"
)

func (h *WranglerHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST(PathParse, h.Parse)
	router.POST(PathFormat, h.Format)
	router.POST(PathCompare, h.Compare)
	router.POST(PathPack, h.Pack)
	router.GET(PathPresets, h.Presets)
	router.GET(PathDefaultAreaCode, h.GetDefaultAreaCode)
	router.PUT(PathDefaultAreaCode, h.SetDefaultAreaCode)
}
