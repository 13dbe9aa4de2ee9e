package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/UCDC-Institute/Website_BCMS/aws_s3"
	"github.com/UCDC-Institute/Website_BCMS/models"
	"github.com/UCDC-Institute/Website_BCMS/settings"
)

// Models
var bannerModel = models.NewBannerModel()
var achieverModel = models.NewAchieverModel()
var alumniModel = models.NewAlumniModel()
var committeeModel = models.NewCommitteeModel()
var contactModel = models.NewContactModel()
var courseModel = models.NewCourseModel()
var galleryModel = models.NewGalleryModel()
var studentCornerModel = models.NewStudentCornerModel()
var facilityModel = models.NewFacilityModel()
var userModel = models.NewUserModel()

// Packages
var aws = aws_s3.NewAWSS3()

// Settings
var settingsData = settings.GetSettings()

func now() primitive.DateTime {
	return primitive.NewDateTimeFromTime(time.Now())
}

func boolOrTrue(value *bool) bool {
	if value == nil {
		return true
	}
	return *value
}
