package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/bol3ezzz/spalux-backend/services/advertisement"
	"github.com/bol3ezzz/spalux-backend/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// formString returns a pointer to the form value when the field was present
// in the request, nil otherwise.
func formString(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

func socialPatchFromForm(c *gin.Context) advertisement.SocialPatch {
	return advertisement.SocialPatch{
		Twitter:   formString(c, "twitter"),
		Instagram: formString(c, "instagram"),
		Facebook:  formString(c, "facebook"),
		Snapchat:  formString(c, "snapchat"),
		Whatsapp:  formString(c, "whatsapp"),
		Phone:     formString(c, "phone"),
		Website:   formString(c, "website"),
		MapLink:   formString(c, "mapLink"),
		Tiktok:    formString(c, "tiktok"),
	}
}

// mediaFilesFromForm extracts the images/videos file fields, enforcing the
// per-request count limits. Non-multipart requests simply carry no files.
func mediaFilesFromForm(c *gin.Context) (images, videos []*multipart.FileHeader, err error) {
	form, formErr := c.MultipartForm()
	if formErr != nil || form == nil {
		return nil, nil, nil
	}
	images = form.File["images"]
	videos = form.File["videos"]
	if len(images) > storage.MaxImagesPerRequest {
		return nil, nil, errors.New("too many image files")
	}
	if len(videos) > storage.MaxVideosPerRequest {
		return nil, nil, errors.New("too many video files")
	}
	return images, videos, nil
}

// writeServiceError maps service errors onto HTTP responses.
func writeServiceError(c *gin.Context, err error) {
	if ve, ok := advertisement.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": ve.Fields})
		return
	}
	if errors.Is(err, advertisement.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Advertisement not found"})
		return
	}
	if errors.Is(err, storage.ErrFileTooLarge) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	getLogger(c).Error("Admin advertisement operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
}

// AdminListAdvertisementsHandler returns every advertisement, including
// inactive and expired ones.
func (hb *HandlerBundle) AdminListAdvertisementsHandler(c *gin.Context) {
	ads, err := hb.AdService.GetAllAdmin()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(ads),
		"data":    ads,
	})
}

// CreateAdvertisementHandler creates an advertisement from a multipart form.
func (hb *HandlerBundle) CreateAdvertisementHandler(c *gin.Context) {
	images, videos, err := mediaFilesFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	in := advertisement.CreateAdvertisementInput{
		NameAr:              c.PostForm("nameAr"),
		NameEn:              c.PostForm("nameEn"),
		DescriptionAr:       c.PostForm("descriptionAr"),
		DescriptionEn:       c.PostForm("descriptionEn"),
		Category:            c.PostForm("category"),
		SubCategory:         c.PostForm("subCategory"),
		Governorate:         c.PostForm("governorate"),
		Audience:            c.PostFormArray("audience"),
		SubscriptionEndDate: c.PostForm("subscriptionEndDate"),
		DisplayOrder:        c.PostForm("displayOrder"),
		Social:              socialPatchFromForm(c),
		Images:              images,
		Videos:              videos,
	}

	ad, err := hb.AdService.Create(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Advertisement created successfully",
		"data":    ad,
	})
}

// UpdateAdvertisementHandler applies a partial update; media fields follow
// the kept-plus-uploaded merge semantics.
func (hb *HandlerBundle) UpdateAdvertisementHandler(c *gin.Context) {
	id := c.Param("id")

	images, videos, err := mediaFilesFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	in := advertisement.UpdateAdvertisementInput{
		NameAr:              formString(c, "nameAr"),
		NameEn:              formString(c, "nameEn"),
		DescriptionAr:       formString(c, "descriptionAr"),
		DescriptionEn:       formString(c, "descriptionEn"),
		Category:            formString(c, "category"),
		SubCategory:         formString(c, "subCategory"),
		Governorate:         formString(c, "governorate"),
		SubscriptionEndDate: formString(c, "subscriptionEndDate"),
		DisplayOrder:        formString(c, "displayOrder"),
		ExistingImages:      formString(c, "existingImages"),
		ExistingVideos:      formString(c, "existingVideos"),
		Social:              socialPatchFromForm(c),
		Images:              images,
		Videos:              videos,
	}

	if vals, ok := c.GetPostFormArray("audience"); ok {
		in.Audience = &vals
	}
	if raw, ok := c.GetPostForm("isActive"); ok {
		if active, parseErr := strconv.ParseBool(raw); parseErr == nil {
			in.IsActive = &active
		}
	}

	ad, err := hb.AdService.Update(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Advertisement updated successfully",
		"data":    ad,
	})
}

// DeleteAdvertisementHandler removes an advertisement and its stored media.
func (hb *HandlerBundle) DeleteAdvertisementHandler(c *gin.Context) {
	id := c.Param("id")

	if err := hb.AdService.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Advertisement deleted successfully",
	})
}

// ToggleAdvertisementHandler flips the explicit active flag.
func (hb *HandlerBundle) ToggleAdvertisementHandler(c *gin.Context) {
	id := c.Param("id")

	ad, err := hb.AdService.Toggle(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	message := "Advertisement deactivated successfully"
	if ad.IsActive {
		message = "Advertisement activated successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    ad,
	})
}
