package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Dannybanksrocks/agriconnect-api/cache"
	"github.com/Dannybanksrocks/agriconnect-api/initializers"
	"github.com/Dannybanksrocks/agriconnect-api/middlewares"
	"github.com/Dannybanksrocks/agriconnect-api/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// CatalogCache is wired from main once redis is up. A nil cache is a no-op.
var CatalogCache *cache.Cache

var catalogGroup singleflight.Group

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// loadListings returns the full catalog, cache-aside with singleflight so a
// cold cache triggers one database read, not one per request. The fetch runs
// on a detached context: coalesced callers must not lose the result because
// the request that started the flight was cancelled.
func loadListings() ([]models.Listing, error) {
	v, err, _ := catalogGroup.Do(cache.KeyListings, func() (any, error) {
		ctx := context.Background()

		var listings []models.Listing
		if err := CatalogCache.Get(ctx, cache.KeyListings, &listings); err == nil {
			return listings, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			log.Println("Catalog cache read error:", err)
		}

		if err := initializers.DB.Preload("Images").Find(&listings).Error; err != nil {
			return nil, err
		}

		rate := initializers.ExchangeRate()
		for i := range listings {
			listings[i].DerivePriceUSD(rate)
		}

		if err := CatalogCache.Set(ctx, cache.KeyListings, listings); err != nil {
			log.Println("Catalog cache write error:", err)
		}
		return listings, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Listing), nil
}

func invalidateCatalog(ctx context.Context) {
	if err := CatalogCache.Invalidate(ctx, cache.KeyListings); err != nil {
		log.Println("Catalog cache invalidation error:", err)
	}
}

func CreateListing(ctx *gin.Context) {
	var listing models.Listing
	if err := ctx.ShouldBindJSON(&listing); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if farmerId, ok := middlewares.UserID(ctx); ok {
		listing.FarmerID = farmerId
		var farmer models.User
		if err := initializers.DB.First(&farmer, farmerId).Error; err == nil {
			listing.FarmerName = farmer.Fullname
		}
	}
	if listing.Status == "" {
		listing.Status = models.ListingAvailable
	}

	if err := initializers.DB.Create(&listing).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create listing", err)
		return
	}

	invalidateCatalog(ctx.Request.Context())
	listing.DerivePriceUSD(initializers.ExchangeRate())
	ctx.JSON(http.StatusCreated, listing)
}

// GetListings filters and sorts the catalog in memory. The whole filtered
// list is returned; the storefront renders it client-side without paging.
func GetListings(ctx *gin.Context) {
	listings, err := loadListings()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch listings", err)
		return
	}

	minPrice, _ := strconv.ParseFloat(ctx.Query("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(ctx.Query("maxPrice"), 64)

	filtered := models.FilterListings(listings, models.ListingFilter{
		Search:   ctx.Query("search"),
		County:   ctx.Query("county"),
		Category: ctx.Query("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		SortBy:   ctx.DefaultQuery("sort", models.SortNewest),
	})

	ctx.JSON(http.StatusOK, gin.H{
		"listings": filtered,
		"total":    len(filtered),
	})
}

func GetListing(ctx *gin.Context) {
	listingId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid listing ID", err)
		return
	}

	var listing models.Listing
	result := initializers.DB.Preload("Images").First(&listing, listingId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Listing not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve listing", result.Error)
		}
		return
	}

	listing.DerivePriceUSD(initializers.ExchangeRate())
	ctx.JSON(http.StatusOK, listing)
}

// UpdateListingStatus moves a listing between available, reserved, sold and
// expired. Administrative; shoppers only ever read listings.
func UpdateListingStatus(ctx *gin.Context) {
	var statusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	switch statusData.Status {
	case models.ListingAvailable, models.ListingReserved, models.ListingSold, models.ListingExpired:
	default:
		respondWithError(ctx, http.StatusBadRequest, "Unknown listing status", nil)
		return
	}

	listingId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid listing ID", err)
		return
	}

	result := initializers.DB.Model(&models.Listing{}).
		Where("id = ?", listingId).
		Update("status", statusData.Status)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update listing status", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Listing not found", nil)
		return
	}

	invalidateCatalog(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{"message": "Listing status updated successfully."})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadListingImages(ctx *gin.Context) {
	// Get multipart form
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	// Get and validate listingId
	listingIdStr := ctx.PostForm("listingId")
	if listingIdStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing listingId", nil)
		return
	}

	listingId, err := strconv.Atoi(listingIdStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid listingId", err)
		return
	}

	// Validate listing exists
	var listing models.Listing
	if err := initializers.DB.First(&listing, listingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Listing not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate listing", err)
		}
		return
	}

	// Get AWS uploader
	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	var uploadedUrls []string
	var failedUploads []string

	// Upload files and save to database
	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Generate a unique filename to prevent overwrites
		uniqueFilename := fmt.Sprintf("%d-%s-%s", listingId, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String("agriconnect"),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close() // Close file immediately after use

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)

		// Create a ListingImage record
		listingImage := models.ListingImage{
			Url:       result.Location,
			ListingID: listingId,
		}

		if err := initializers.DB.Create(&listingImage).Error; err != nil {
			log.Printf("Error saving image to database: %v", err)
			// We've already uploaded the file, so we'll just log this error
		}
	}

	invalidateCatalog(ctx.Request.Context())

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}

	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}
