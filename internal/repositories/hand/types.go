package hand

import "github.com/dokoclub/dokolator/internal/models"

type SaveHandInput struct {
	Hand *models.Hand
}

type SaveHandsInput struct {
	Hands []*models.Hand
}

type GetHandInput struct {
	HandID string
}

type GetHandsBySessionInput struct {
	SessionID string
}
