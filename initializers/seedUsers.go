package initializers

import (
	"log"

	"github.com/Dannybanksrocks/agriconnect-api/models"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	Fullname string
	Email    string
	Phone    string
	County   string
	Password string
	Role     string
}

// seedUsers are the fixed demo accounts. A seed entry wins on email
// collision: if a self-registered row already holds the email, it is
// overwritten with the seed identity.
var seedUsers = []seedUser{
	{"Admin User", "admin@agriconnect.lr", "0770000001", "Montserrado", "admin1234", models.RoleAdmin},
	{"Martha Konneh", "martha@agriconnect.lr", "0770123456", "Bong", "consumer1234", models.RoleConsumer},
	{"James Dolo", "james@agriconnect.lr", "0886123456", "Nimba", "farmer1234", models.RoleFarmer},
}

func SeedUsers() {
	for _, seed := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), 10)
		if err != nil {
			log.Println("Failed to hash seed password:", err)
			continue
		}

		user := models.User{
			Fullname:         seed.Fullname,
			Email:            seed.Email,
			Phone:            models.NormalizePhone(seed.Phone),
			County:           seed.County,
			Password:         string(hashed),
			Role:             seed.Role,
			AccountActivated: true,
		}

		var existing models.User
		result := DB.Where("email = ?", seed.Email).First(&existing)
		if result.Error == nil {
			user.ID = existing.ID
			if err := DB.Save(&user).Error; err != nil {
				log.Println("Failed to refresh seed user:", err)
			}
			continue
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Println("Failed to create seed user:", err)
		}
	}
	log.Println("Seed users ready.")
}
