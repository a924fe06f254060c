package presence

import (
	"github.com/genricoloni/mprisence/internal/domain"
	"github.com/genricoloni/mprisence/internal/domain/mocks"
	"go.uber.org/mock/gomock"
)

// expectPlayer registers the three property reads Extract makes for service
func expectPlayer(m *mocks.MockPropertySource, service, status string, positionMicros int64, meta map[string]domain.Value) {
	m.EXPECT().Property(gomock.Any(), service, "PlaybackStatus").Return(domain.StringValue(status), nil)
	m.EXPECT().Property(gomock.Any(), service, "Position").Return(domain.IntValue(positionMicros), nil)
	m.EXPECT().Property(gomock.Any(), service, "Metadata").Return(domain.DictValue(meta), nil)
}

// track builds a typical metadata dictionary
func track(title, album, url string, artists ...string) map[string]domain.Value {
	meta := map[string]domain.Value{
		"xesam:title": domain.StringValue(title),
		"xesam:album": domain.StringValue(album),
	}
	if url != "" {
		meta["xesam:url"] = domain.StringValue(url)
	}
	items := make([]domain.Value, 0, len(artists))
	for _, a := range artists {
		items = append(items, domain.StringValue(a))
	}
	meta["xesam:artist"] = domain.ArrayValue(items...)
	return meta
}
