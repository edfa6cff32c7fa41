package session

import "github.com/dokoclub/dokolator/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type ListSessionsByOwnerInput struct {
	OwnerID string
}
