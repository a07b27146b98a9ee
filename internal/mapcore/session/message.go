package session

import (
	"prepmap/internal/domain/entity"
	"prepmap/internal/mapcore/interaction"
	"prepmap/internal/mapcore/viewport"
)

// Inbound message types.
const (
	InPointer = "pointer"
	InSelect  = "select"
	InDismiss = "dismiss"
)

// Outbound message types.
const (
	OutReady             = "ready"
	OutRegionHovered     = "region_hovered"
	OutHoverCleared      = "hover_cleared"
	OutRegionSelected    = "region_selected"
	OutFacilitiesLoading = "facilities_loading"
	OutFacilities        = "facilities"
	OutViewport          = "viewport"
	OutPins              = "pins"
	OutDismissed         = "dismissed"
	OutMapUnavailable    = "map_unavailable"
	OutError             = "error"
)

// Inbound is a client request.
type Inbound struct {
	Type     string                    `json:"type"`
	Pointer  *interaction.PointerEvent `json:"pointer,omitempty"`
	RegionID string                    `json:"regionId,omitempty"`
}

// Message is a server push. Only the fields relevant to Type are set.
type Message struct {
	Type        string             `json:"type"`
	Seq         uint64             `json:"seq,omitempty"`
	RegionID    string             `json:"regionId,omitempty"`
	DisplayName string             `json:"displayName,omitempty"`
	Path        string             `json:"path,omitempty"`
	ScreenX     float64            `json:"screenX,omitempty"`
	ScreenY     float64            `json:"screenY,omitempty"`
	Bound       *entity.Rect       `json:"bound,omitempty"`
	Viewport    *viewport.Frame    `json:"viewport,omitempty"`
	Facilities  []*entity.Facility `json:"facilities,omitempty"`
	Degraded    bool               `json:"degraded,omitempty"`
	Pins        []entity.Pin       `json:"pins,omitempty"`
	Error       string             `json:"error,omitempty"`
}
