package models

import (
	"github.com/UCDC-Institute/Website_BCMS/db"
	"github.com/UCDC-Institute/Website_BCMS/settings"
)

var settingsData = settings.GetSettings()

// MongoDB
var DbConnect = db.NewConnection(
	settingsData.MONGO_HOST,
	settingsData.MONGO_DB,
)
