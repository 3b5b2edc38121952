package database

import (
	"fmt"
	"log"

	"lms_backend/internal/config"
	"lms_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if shouldMigrate(cfg) {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")

		if err := seedDefaults(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// shouldMigrate decides whether startup runs AutoMigrate. Release mode skips
// it unless forced from the command line; every other mode migrates.
func shouldMigrate(cfg *config.Config) bool {
	if cfg.ForceMigrate {
		return true
	}
	return cfg.Server.Mode != "release"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Skill{},
		&model.UserSkill{},
		&model.Course{},
		&model.LearningPath{},
		&model.LearningPathCourse{},
		&model.Assignment{},
		&model.CourseProgress{},
	)
}

// seedDefaults fills the skill catalog and creates the bootstrap admin when
// the corresponding tables are empty.
func seedDefaults(db *gorm.DB) error {
	var skillCount int64
	db.Model(&model.Skill{}).Count(&skillCount)
	if skillCount == 0 {
		defaultSkills := []model.Skill{
			{Name: "JavaScript", Description: "Programming language"},
			{Name: "React", Description: "Frontend library"},
			{Name: "Node.js", Description: "Backend runtime"},
			{Name: "CSS", Description: "Styling language"},
			{Name: "SQL", Description: "Database language"},
		}
		for _, s := range defaultSkills {
			if err := db.Create(&s).Error; err != nil {
				return err
			}
		}
	}

	var adminCount int64
	db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&adminCount)
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("adminpassword"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			Name:     "Admin User",
			Email:    "admin@example.com",
			Password: string(hashed),
			Role:     model.Admin,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Println("Seeded default admin account")
	}

	return nil
}
