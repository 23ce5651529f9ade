package cms_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"journey-api/internal/auth"
	cms "journey-api/internal/cms/service"
	"journey-api/internal/logger"
	"journey-api/internal/models"
	"journey-api/internal/storage"
	"journey-api/internal/utils"
)

type Handler struct {
	Service *cms.CMSService
	Logger  *logger.Logger
}

func NewHandler(svc *cms.CMSService, log *logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) respondErr(w http.ResponseWriter, what string, err error) {
	var verr cms.ValidationError
	if errors.As(err, &verr) {
		utils.Error(w, http.StatusBadRequest, verr.Error())
		return
	}
	if storage.IsNotFound(err) {
		utils.Error(w, http.StatusNotFound, fmt.Sprintf("%s not found", what))
		return
	}
	h.Logger.Error("CMS", fmt.Sprintf("%s: %v", what, err))
	utils.Error(w, http.StatusInternalServerError, fmt.Sprintf("failed to process %s", what))
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func updatedBy(r *http.Request) string {
	if user := auth.UserFromContext(r.Context()); user != nil {
		return user.ID
	}
	return ""
}

// includeInactive is an admin-only list switch.
func includeInactive(r *http.Request) bool {
	return r.URL.Query().Get("all") == "true"
}

// ---------------- SINGLETONS ----------------

func (h *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetHeroSettings()
	if err != nil {
		h.respondErr(w, "hero settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var settings models.HeroSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateHeroSettings(settings, updatedBy(r))
	if err != nil {
		h.respondErr(w, "hero settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) GetNavbar(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetNavbarSettings()
	if err != nil {
		h.respondErr(w, "navbar settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateNavbar(w http.ResponseWriter, r *http.Request) {
	var settings models.NavbarSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateNavbarSettings(settings, updatedBy(r))
	if err != nil {
		h.respondErr(w, "navbar settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetThemeSettings()
	if err != nil {
		h.respondErr(w, "theme settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var settings models.ThemeSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateThemeSettings(settings, updatedBy(r))
	if err != nil {
		h.respondErr(w, "theme settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetContactSettings()
	if err != nil {
		h.respondErr(w, "contact settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var settings models.ContactSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateContactSettings(settings, updatedBy(r))
	if err != nil {
		h.respondErr(w, "contact settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) GetFooter(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetFooterSettings()
	if err != nil {
		h.respondErr(w, "footer settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateFooter(w http.ResponseWriter, r *http.Request) {
	var settings models.FooterSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateFooterSettings(settings, updatedBy(r))
	if err != nil {
		h.respondErr(w, "footer settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) GetSeo(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetSeoSettings()
	if err != nil {
		h.respondErr(w, "seo settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateSeo(w http.ResponseWriter, r *http.Request) {
	var settings models.SeoSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateSeoSettings(settings, updatedBy(r))
	if err != nil {
		h.respondErr(w, "seo settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetAboutSettings()
	if err != nil {
		h.respondErr(w, "about settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var settings models.AboutSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateAboutSettings(settings, updatedBy(r))
	if err != nil {
		h.respondErr(w, "about settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) GetPresidentMessage(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetPresidentMessageSettings()
	if err != nil {
		h.respondErr(w, "president message settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdatePresidentMessage(w http.ResponseWriter, r *http.Request) {
	var settings models.PresidentMessageSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdatePresidentMessageSettings(settings, updatedBy(r))
	if err != nil {
		h.respondErr(w, "president message settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) GetPartnerSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetPartnerSettings()
	if err != nil {
		h.respondErr(w, "partner settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdatePartnerSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.PartnerSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdatePartnerSettings(settings, updatedBy(r))
	if err != nil {
		h.respondErr(w, "partner settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) GetBookingPage(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.GetBookingPageSettings()
	if err != nil {
		h.respondErr(w, "booking page settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateBookingPage(w http.ResponseWriter, r *http.Request) {
	var settings models.BookingPageSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateBookingPageSettings(settings)
	if err != nil {
		h.respondErr(w, "booking page settings", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

// ---------------- LANDING SECTIONS ----------------

func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Service.GetLandingSections(includeInactive(r))
	if err != nil {
		h.respondErr(w, "landing sections", err)
		return
	}
	utils.JSON(w, http.StatusOK, sections)
}

func (h *Handler) GetSectionBySlug(w http.ResponseWriter, r *http.Request) {
	section, err := h.Service.GetLandingSectionBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		h.respondErr(w, "landing section", err)
		return
	}
	utils.JSON(w, http.StatusOK, section)
}

func (h *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var section models.LandingSection
	if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	section.UpdatedBy = updatedBy(r)
	created, err := h.Service.CreateLandingSection(section)
	if err != nil {
		h.respondErr(w, "landing section", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var section models.LandingSection
	if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	section.UpdatedBy = updatedBy(r)
	updated, err := h.Service.UpdateLandingSection(id, section)
	if err != nil {
		h.respondErr(w, "landing section", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Service.DeleteLandingSection, "landing section")
}

// ---------------- SECTION BLOCKS ----------------

func (h *Handler) ListSectionBlocks(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.ParseInt(chi.URLParam(r, "sectionId"), 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid section id")
		return
	}
	blocks, err := h.Service.GetSectionBlocks(sectionID, includeInactive(r))
	if err != nil {
		h.respondErr(w, "section blocks", err)
		return
	}
	utils.JSON(w, http.StatusOK, blocks)
}

func (h *Handler) CreateSectionBlock(w http.ResponseWriter, r *http.Request) {
	var block models.SectionBlock
	if err := json.NewDecoder(r.Body).Decode(&block); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.Service.CreateSectionBlock(block)
	if err != nil {
		h.respondErr(w, "section block", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateSectionBlock(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var block models.SectionBlock
	if err := json.NewDecoder(r.Body).Decode(&block); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateSectionBlock(id, block)
	if err != nil {
		h.respondErr(w, "section block", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteSectionBlock(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Service.DeleteSectionBlock, "section block")
}

// ---------------- FOCUS ITEMS ----------------

func (h *Handler) ListFocusItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetFocusItems(includeInactive(r))
	if err != nil {
		h.respondErr(w, "focus items", err)
		return
	}
	utils.JSON(w, http.StatusOK, items)
}

func (h *Handler) CreateFocusItem(w http.ResponseWriter, r *http.Request) {
	var item models.FocusItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.CreatedBy = updatedBy(r)
	created, err := h.Service.CreateFocusItem(item)
	if err != nil {
		h.respondErr(w, "focus item", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateFocusItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var item models.FocusItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateFocusItem(id, item)
	if err != nil {
		h.respondErr(w, "focus item", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteFocusItem(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Service.DeleteFocusItem, "focus item")
}

// ---------------- TEAM MEMBERS ----------------

func (h *Handler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.GetTeamMembers(includeInactive(r))
	if err != nil {
		h.respondErr(w, "team members", err)
		return
	}
	utils.JSON(w, http.StatusOK, members)
}

func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var member models.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	member.CreatedBy = updatedBy(r)
	created, err := h.Service.CreateTeamMember(member)
	if err != nil {
		h.respondErr(w, "team member", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var member models.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateTeamMember(id, member)
	if err != nil {
		h.respondErr(w, "team member", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Service.DeleteTeamMember, "team member")
}

// ---------------- TESTIMONIALS ----------------

func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.Service.GetApprovedTestimonials()
	if err != nil {
		h.respondErr(w, "testimonials", err)
		return
	}
	utils.JSON(w, http.StatusOK, testimonials)
}

func (h *Handler) ListAllTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.Service.GetAllTestimonials()
	if err != nil {
		h.respondErr(w, "testimonials", err)
		return
	}
	utils.JSON(w, http.StatusOK, testimonials)
}

func (h *Handler) SubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	var t models.LandingTestimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if user := auth.UserFromContext(r.Context()); user != nil {
		t.UserID = user.ID
	}
	created, err := h.Service.SubmitTestimonial(t)
	if err != nil {
		h.respondErr(w, "testimonial", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t models.LandingTestimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.Service.CreateTestimonial(t)
	if err != nil {
		h.respondErr(w, "testimonial", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var t models.LandingTestimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdateTestimonial(id, t)
	if err != nil {
		h.respondErr(w, "testimonial", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Service.DeleteTestimonial, "testimonial")
}

// ---------------- SITE STATS ----------------

func (h *Handler) ListSiteStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetSiteStats(includeInactive(r))
	if err != nil {
		h.respondErr(w, "site stats", err)
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}

func (h *Handler) CreateSiteStat(w http.ResponseWriter, r *http.Request) {
	var stat models.SiteStat
	if err := json.NewDecoder(r.Body).Decode(&stat); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	stat.UpdatedBy = updatedBy(r)
	created, err := h.Service.CreateSiteStat(stat)
	if err != nil {
		h.respondErr(w, "site stat", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateSiteStat(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var stat models.SiteStat
	if err := json.NewDecoder(r.Body).Decode(&stat); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	stat.UpdatedBy = updatedBy(r)
	updated, err := h.Service.UpdateSiteStat(id, stat)
	if err != nil {
		h.respondErr(w, "site stat", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteSiteStat(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Service.DeleteSiteStat, "site stat")
}

// ---------------- PARTNERS ----------------

func (h *Handler) ListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.Service.GetPartners(includeInactive(r))
	if err != nil {
		h.respondErr(w, "partners", err)
		return
	}
	utils.JSON(w, http.StatusOK, partners)
}

func (h *Handler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var partner models.Partner
	if err := json.NewDecoder(r.Body).Decode(&partner); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	partner.CreatedBy = updatedBy(r)
	created, err := h.Service.CreatePartner(partner)
	if err != nil {
		h.respondErr(w, "partner", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	var partner models.Partner
	if err := json.NewDecoder(r.Body).Decode(&partner); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.Service.UpdatePartner(id, partner)
	if err != nil {
		h.respondErr(w, "partner", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Service.DeletePartner, "partner")
}

// ---------------- MEDIA ----------------

func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Service.GetMediaAssets()
	if err != nil {
		h.respondErr(w, "media assets", err)
		return
	}
	utils.JSON(w, http.StatusOK, assets)
}

func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	asset, err := h.Service.GetMediaAsset(id)
	if err != nil {
		h.respondErr(w, "media asset", err)
		return
	}
	utils.JSON(w, http.StatusOK, asset)
}

func (h *Handler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	var asset models.MediaAsset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.Service.CreateMediaAsset(asset, updatedBy(r))
	if err != nil {
		h.respondErr(w, "media asset", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.Service.DeleteMediaAsset, "media asset")
}

// ---------------- HELPERS ----------------

func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, del func(int64) error, what string) {
	id, err := idParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := del(id); err != nil {
		h.respondErr(w, what, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
