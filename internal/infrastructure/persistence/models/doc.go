// Package models holds the GORM rows behind tariffs, content, listings and
// accounts. Repositories convert them to and from domain entities.
package models

// All lists the rows passed to AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&ElectricityTariffModel{},
		&InternetTariffModel{},
		&NewsItemModel{},
		&BlogPostModel{},
		&ForumPostModel{},
		&ForumReplyModel{},
		&PropertyModel{},
		&SecuritySystemModel{},
		&UserModel{},
		&SessionModel{},
	}
}
