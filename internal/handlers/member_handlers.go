package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gym_club_backend/internal/calc"
	"gym_club_backend/internal/lookup"
	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

// maxPhotoBytes caps member photo uploads.
const maxPhotoBytes = 8 << 20

// MemberHandler serves member registration, management and the quick check.
type MemberHandler struct {
	memberService services.MemberService
	photoService  services.PhotoService
	lookupService services.LookupService
	now           services.Clock
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(ms services.MemberService, ps services.PhotoService, ls services.LookupService, clock services.Clock) *MemberHandler {
	return &MemberHandler{memberService: ms, photoService: ps, lookupService: ls, now: clock}
}

func (h *MemberHandler) respondMemberError(c *gin.Context, err error, action string) {
	utils.LogError(err, action)
	switch {
	case errors.Is(err, services.ErrMemberNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found", ""))
	case errors.Is(err, services.ErrMemberCodeExists):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Member code already in use", err.Error()))
	case errors.Is(err, services.ErrMemberValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed", err.Error()))
	default:
		internalError(c, "Failed to "+action)
	}
}

// CreateMember registers a new member and answers with the generated id.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req services.MemberRequest
	if !bindJSON(c, &req, "CreateMember") {
		return
	}
	member, err := h.memberService.CreateMember(req)
	if err != nil {
		h.respondMemberError(c, err, "save member")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, member)
}

// GetMembers lists every member with derived status, filtered by ?search= when given.
func (h *MemberHandler) GetMembers(c *gin.Context) {
	var (
		members []models.MemberView
		err     error
	)
	if term := c.Query("search"); term != "" {
		members, err = h.memberService.SearchMembers(term)
	} else {
		members, err = h.memberService.GetMembers()
	}
	if err != nil {
		h.respondMemberError(c, err, "load members")
		return
	}
	if members == nil {
		members = []models.MemberView{}
	}
	utils.RespondWithData(c, http.StatusOK, members)
}

// GetMemberByID fetches one member with derived status.
func (h *MemberHandler) GetMemberByID(c *gin.Context) {
	id, ok := pathID(c, "member")
	if !ok {
		return
	}
	member, err := h.memberService.GetMemberByID(id)
	if err != nil {
		h.respondMemberError(c, err, "load member")
		return
	}
	utils.RespondWithData(c, http.StatusOK, calc.View(*member, h.clock()))
}

// UpdateMember replaces the mutable fields of a member.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := pathID(c, "member")
	if !ok {
		return
	}
	var req services.MemberRequest
	if !bindJSON(c, &req, "UpdateMember") {
		return
	}
	member, err := h.memberService.UpdateMember(id, req)
	if err != nil {
		h.respondMemberError(c, err, "update member")
		return
	}
	utils.RespondWithData(c, http.StatusOK, member)
}

// DeleteMember removes a member. Unknown ids are a 404, never a silent success.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := pathID(c, "member")
	if !ok {
		return
	}
	if err := h.memberService.DeleteMember(id); err != nil {
		h.respondMemberError(c, err, "delete member")
		return
	}
	utils.RespondWithData(c, http.StatusOK, gin.H{"id": id})
}

// NextMemberCode proposes the next display code.
func (h *MemberHandler) NextMemberCode(c *gin.Context) {
	code, err := h.memberService.NextMemberCode()
	if err != nil {
		h.respondMemberError(c, err, "get next member id")
		return
	}
	utils.RespondWithData(c, http.StatusOK, gin.H{"member_code": code})
}

// UploadPhoto stores the multipart "photo" file as the member's thumbnail.
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
	id, ok := pathID(c, "member")
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)
	header, err := c.FormFile("photo")
	if err != nil {
		utils.RespondValidationFailed(c, "multipart field \"photo\" is required: "+err.Error())
		return
	}
	file, err := header.Open()
	if err != nil {
		internalError(c, "Failed to read uploaded photo")
		return
	}
	defer file.Close()

	path, err := h.photoService.SaveMemberPhoto(id, file)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPhoto) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Photo is not a readable image", err.Error()))
			return
		}
		h.respondMemberError(c, err, "store member photo")
		return
	}
	utils.RespondWithData(c, http.StatusOK, gin.H{"photo_path": path})
}

// LookupMember answers the quick subscription check for ?q=.
func (h *MemberHandler) LookupMember(c *gin.Context) {
	term := c.Query("q")
	if utils.IsEmpty(term) {
		utils.RespondValidationFailed(c, "query parameter q is required")
		return
	}
	res, err := h.lookupService.LookupMember(c.Request.Context(), term)
	if err != nil {
		if errors.Is(err, lookup.ErrSuperseded) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Lookup superseded by a newer request", ""))
			return
		}
		h.respondMemberError(c, err, "look up member")
		return
	}
	utils.RespondWithData(c, http.StatusOK, res)
}

func (h *MemberHandler) clock() time.Time {
	if h.now == nil {
		return time.Now()
	}
	return h.now()
}
