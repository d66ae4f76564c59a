package services_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
)

func pngBytes(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.NRGBA{R: 200, A: 255})
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf
}

func TestSaveMemberPhotoStoresThumbnail(t *testing.T) {
	f := newFixture(t)
	m := mustCreateMember(t, f.memberSvc, memberReq("Pic", "0101", "2025-03-01", models.SubscriptionMonthly))
	svc := services.NewPhotoService(f.memberSvc, t.TempDir())

	path, err := svc.SaveMemberPhoto(m.ID, pngBytes(t, 1024, 512))
	if err != nil {
		t.Fatalf("save photo: %v", err)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Fatalf("unexpected photo path %s", path)
	}
	thumb, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open thumbnail: %v", err)
	}
	if b := thumb.Bounds(); b.Dx() != 512 || b.Dy() != 256 {
		t.Fatalf("thumbnail size = %dx%d", b.Dx(), b.Dy())
	}
	stored, _ := f.memberSvc.GetMemberByID(m.ID)
	if stored.PhotoPath == nil || *stored.PhotoPath != path {
		t.Fatalf("photo path not recorded: %v", stored.PhotoPath)
	}
}

func TestSaveMemberPhotoRejectsGarbage(t *testing.T) {
	f := newFixture(t)
	m := mustCreateMember(t, f.memberSvc, memberReq("Pic", "0101", "2025-03-01", models.SubscriptionMonthly))
	svc := services.NewPhotoService(f.memberSvc, t.TempDir())

	if _, err := svc.SaveMemberPhoto(m.ID, strings.NewReader("not an image")); !errors.Is(err, services.ErrInvalidPhoto) {
		t.Fatalf("expected invalid photo, got %v", err)
	}
	if _, err := svc.SaveMemberPhoto(m.ID+100, pngBytes(t, 10, 10)); !errors.Is(err, services.ErrMemberNotFound) {
		t.Fatalf("expected member not found, got %v", err)
	}
}
