package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"gym_club_backend/pkg/utils"
)

var ErrInvalidPhoto = errors.New("photo is not a readable image")

// photoMaxSide bounds the stored thumbnail in pixels.
const photoMaxSide = 512

// PhotoService stores member photos as JPEG thumbnails under the photo directory.
type PhotoService interface {
	SaveMemberPhoto(memberID int64, src io.Reader) (string, error)
}

type photoService struct {
	members  MemberService
	photoDir string
}

func NewPhotoService(members MemberService, photoDir string) PhotoService {
	return &photoService{members: members, photoDir: photoDir}
}

func (s *photoService) SaveMemberPhoto(memberID int64, src io.Reader) (string, error) {
	if _, err := s.members.GetMemberByID(memberID); err != nil {
		return "", err
	}
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}
	if err := os.MkdirAll(s.photoDir, 0o755); err != nil {
		return "", fmt.Errorf("create photo directory: %w", err)
	}

	thumb := imaging.Fit(img, photoMaxSide, photoMaxSide, imaging.Lanczos)
	path := filepath.Join(s.photoDir, fmt.Sprintf("member-%d-%s.jpg", memberID, uuid.NewString()[:8]))
	if err := imaging.Save(thumb, path, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}
	if err := s.members.SetMemberPhoto(memberID, path); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	utils.LogInfo("Member photo stored", map[string]interface{}{"member_id": memberID, "path": path})
	return path, nil
}
