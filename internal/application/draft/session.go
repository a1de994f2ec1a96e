package draft

import (
	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/application/service"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

// Session bundles the parts of one profile editing session around a single draft.
type Session struct {
	Store  *Store
	Editor *Editor
	Avatar *AvatarPipeline
	Sync   *SyncClient
}

func NewSession(gw service.ProfileGateway, nav Navigator, previewer Previewer, log logger.Logger) *Session {
	avatar := NewAvatarPipeline(gw, previewer, log.With(zap.String("component", "avatar")))
	store := NewStore(avatar)
	return &Session{
		Store:  store,
		Editor: NewEditor(store, log),
		Avatar: avatar,
		Sync:   NewSyncClient(gw, store, nav, log),
	}
}

// Close ends the session and releases the avatar preview.
func (s *Session) Close() {
	s.Editor.Cancel()
	s.Avatar.Close()
}
