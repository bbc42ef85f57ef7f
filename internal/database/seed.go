package database

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"autosalon/internal/models"
)

// Seed наполняет базу стартовыми данными: админ, демо-пользователи,
// справочники и список марок. Каждый шаг проверяет, что данных ещё нет.
func Seed(db *gorm.DB, adminEmail, adminPassword string) {
	createDefaultAdmin(db, adminEmail, adminPassword)
	seedDefaultUsers(db)
	seedReferenceTypes(db)
	seedBrands(db)
}

// админ только из кода/конфига
func createDefaultAdmin(db *gorm.DB, email, password string) {
	if email == "" {
		email = "admin@autosalon.ru"
	}
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Warnf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// админ уже есть — ничего не делаем
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Warnf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         "Администратор",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Warnf("failed to create default admin: %v", err)
		return
	}

	log.Infof("created default admin user: %s", email)
}

// пара тестовых аккаунтов для демо (manager и viewer)
func seedDefaultUsers(db *gorm.DB) {
	type seedUser struct {
		Name     string
		Email    string
		Password string
		Role     models.UserRole
	}

	users := []seedUser{
		{Name: "Менеджер Иван", Email: "manager@autosalon.ru", Password: "Manager123!", Role: models.RoleManager},
		{Name: "Наблюдатель", Email: "viewer@autosalon.ru", Password: "Viewer123!", Role: models.RoleViewer},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&models.User{}).
			Where("email = ?", u.Email).
			Count(&count).Error; err != nil {
			log.Warnf("failed to check seed user %s: %v", u.Email, err)
			continue
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Warnf("failed to hash password for %s: %v", u.Email, err)
			continue
		}

		user := models.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
		}

		if err := db.Create(&user).Error; err != nil {
			log.Warnf("failed to create seed user %s: %v", u.Email, err)
			continue
		}

		log.Infof("created seed user: %s (role=%s)", u.Email, u.Role)
	}
}

func seedReferenceTypes(db *gorm.DB) {
	bodyTypes := map[string]string{
		"Седан":       "Автомобиль с четырьмя дверями и багажником отделенным от салона",
		"Хэтчбек":     "Автомобиль с укороченным багажным отделением и задней дверью",
		"Внедорожник": "Высокий автомобиль с увеличенным дорожным просветом",
		"Кроссовер":   "Легковой автомобиль с элементами внедорожника",
		"Купе":        "Двухдверный автомобиль со спортивным дизайном",
		"Кабриолет":   "Автомобиль с откидным верхом",
		"Минивэн":     "Многофункциональный автомобиль для перевозки пассажиров",
		"Пикап":       "Автомобиль с грузовой платформой",
		"Фургон":      "Автомобиль для перевозки грузов",
	}
	for name, desc := range bodyTypes {
		seedOne(db, &models.BodyType{Name: name, Description: desc}, name)
	}

	fuelTypes := map[string]string{
		"Бензин":        "Бензиновый двигатель внутреннего сгорания",
		"Дизель":        "Дизельный двигатель",
		"Газ":           "Газовый двигатель",
		"Гибрид":        "Двигатель внутреннего сгорания + электродвигатель",
		"Электричество": "Полностью электрический двигатель",
	}
	for name, desc := range fuelTypes {
		seedOne(db, &models.FuelType{Name: name, Description: desc}, name)
	}

	transmissionTypes := map[string]string{
		"Механика": "Механическая коробка передач",
		"Автомат":  "Автоматическая коробка передач",
		"Вариатор": "Вариаторная коробка передач (CVT)",
		"Робот":    "Роботизированная коробка передач",
	}
	for name, desc := range transmissionTypes {
		seedOne(db, &models.TransmissionType{Name: name, Description: desc}, name)
	}

	driveTypes := map[string]string{
		"Передний":            "Переднеприводный автомобиль",
		"Задний":              "Заднеприводный автомобиль",
		"Полный":              "Полноприводный автомобиль (4WD)",
		"Подключаемый полный": "Автомобиль с подключаемым полным приводом (AWD)",
	}
	for name, desc := range driveTypes {
		seedOne(db, &models.DriveType{Name: name, Description: desc}, name)
	}
}

func seedBrands(db *gorm.DB) {
	brands := map[string]string{
		"Toyota":        "Япония",
		"BMW":           "Германия",
		"Mercedes-Benz": "Германия",
		"Hyundai":       "Южная Корея",
		"Kia":           "Южная Корея",
		"Lada":          "Россия",
	}
	for name, country := range brands {
		var count int64
		if err := db.Model(&models.Brand{}).Where("name = ?", name).Count(&count).Error; err != nil || count > 0 {
			continue
		}
		if err := db.Create(&models.Brand{Name: name, Country: country}).Error; err != nil {
			log.Warnf("failed to seed brand %s: %v", name, err)
		}
	}
}

// seedOne создаёт справочную запись, если её ещё нет (по имени).
func seedOne(db *gorm.DB, record any, name string) {
	var count int64
	if err := db.Model(record).Where("name = ?", name).Count(&count).Error; err != nil {
		log.Warnf("failed to check reference %q: %v", name, err)
		return
	}
	if count > 0 {
		return
	}
	if err := db.Create(record).Error; err != nil {
		log.Warnf("failed to seed reference %q: %v", name, err)
	}
}
