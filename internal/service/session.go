package service

import (
	"time"

	"github.com/GurshaanDaula/Assignment2-Database/internal/model"
	"github.com/GurshaanDaula/Assignment2-Database/internal/repository"

	"github.com/google/uuid"
)

// SessionTTL время жизни сессии; продлевается на каждом обращении.
const SessionTTL = time.Hour

type sessionService struct {
	sessionRepo repository.SessionRepository
}

func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) Create(userID uint, username string) (string, error) {
	id := uuid.NewString()

	session := &model.Session{
		UserID:   userID,
		Username: username,
	}
	if err := s.sessionRepo.Save(id, session, SessionTTL); err != nil {
		return "", err
	}

	return id, nil
}

func (s *sessionService) Get(id string) (*model.Session, error) {
	return s.sessionRepo.Find(id, SessionTTL)
}

func (s *sessionService) Destroy(id string) error {
	return s.sessionRepo.Delete(id)
}
