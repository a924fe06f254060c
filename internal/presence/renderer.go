package presence

import (
	"strings"

	"github.com/genricoloni/mprisence/internal/domain"
	"github.com/genricoloni/mprisence/internal/format"
	"github.com/genricoloni/mprisence/internal/textstyle"
	"go.uber.org/zap"
)

const (
	// DetailsMaxBytes bounds the details line before the ellipsis
	DetailsMaxBytes = 125

	// InitialPosition is what a paused presence shows before anything was seen playing
	InitialPosition = "0"

	byLabel = "By"
)

// Assets are the fixed images shown next to the presence
type Assets struct {
	LargeImage string
	LargeText  string
}

// Renderer turns the selected snapshot into the two presence lines
type Renderer struct {
	logger   *zap.Logger
	embolden bool
	assets   Assets
	styles   *textstyle.Cache
}

// NewRenderer creates a renderer. Titles and artists are styled when embolden is set.
func NewRenderer(logger *zap.Logger, embolden bool, assets Assets) *Renderer {
	return &Renderer{
		logger:   logger,
		embolden: embolden,
		assets:   assets,
		styles:   textstyle.NewCache(0),
	}
}

// Render builds the presence for snap.
//
// remembered holds the position shown while paused. It is overwritten with
// the snapshot position when snap is Playing and only read otherwise.
func (r *Renderer) Render(snap domain.Snapshot, remembered *string) domain.Presence {
	title := valueOrEmpty(snap.Title)
	album := valueOrEmpty(snap.Album)
	artists := strings.Join(snap.Artists, ", ")

	if snap.Title == nil || snap.Album == nil {
		r.logger.Debug("Snapshot without title or album",
			zap.String("player", snap.ServiceID),
			zap.Bool("hasTitle", snap.Title != nil),
			zap.Bool("hasAlbum", snap.Album != nil))
	}

	by := byLabel
	if r.embolden {
		title = r.style(title, textstyle.VariantBold)
		artists = r.style(artists, textstyle.VariantItalic)
		by = r.style(by, textstyle.VariantBoldScript)
	}

	var state string
	if snap.Status == domain.StatusPlaying {
		state = by + ": " + artists
		*remembered = snap.Position
	} else {
		state = "Paused @ " + *remembered + " • \nBy: " + artists
	}

	return domain.Presence{
		State:      state,
		Details:    format.TruncateBytes("🎵 "+title+" • 💿 "+album, DetailsMaxBytes),
		LargeImage: r.assets.LargeImage,
		LargeText:  r.assets.LargeText,
	}
}

// style returns text in variant v, or text unchanged when it cannot be styled
func (r *Renderer) style(text string, v textstyle.Variant) string {
	styled, err := r.styles.Style(text, v)
	if err != nil {
		r.logger.Debug("Keeping unstyled text",
			zap.Stringer("variant", v),
			zap.Error(err))
		return text
	}
	return styled
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
