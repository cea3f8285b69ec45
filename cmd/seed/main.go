package main

import (
	"time"

	"github.com/zzirit/zzirit-api/internal/config"
	"github.com/zzirit/zzirit-api/internal/logger"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/service"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加商品类型
	typeNames := []string{"전자제품", "패션", "식품"}
	typeIDs := map[string]uint{}
	for _, name := range typeNames {
		var existing models.ItemType
		if err := models.DB.Where("name = ?", name).First(&existing).Error; err != nil {
			itemType := models.ItemType{Name: name}
			if err := models.DB.Create(&itemType).Error; err != nil {
				stdLog.Printf("Failed to create type %s: %v", name, err)
				continue
			}
			typeIDs[name] = itemType.ID
			stdLog.Printf("Created type: %s", name)
		} else {
			typeIDs[name] = existing.ID
			stdLog.Printf("Type already exists: %s", name)
		}
	}

	// 添加品牌
	brandSpecs := []struct {
		TypeName string
		Name     string
	}{
		{"전자제품", "삼성전자"},
		{"전자제품", "LG전자"},
		{"패션", "나이키"},
		{"패션", "아디다스"},
		{"식품", "오뚜기"},
	}
	brandIDs := map[string]uint{}
	for _, spec := range brandSpecs {
		typeID := typeIDs[spec.TypeName]
		if typeID == 0 {
			continue
		}
		var existing models.Brand
		if err := models.DB.Where("type_id = ? AND name = ?", typeID, spec.Name).First(&existing).Error; err != nil {
			brand := models.Brand{Name: spec.Name, TypeID: typeID}
			if err := models.DB.Create(&brand).Error; err != nil {
				stdLog.Printf("Failed to create brand %s: %v", spec.Name, err)
				continue
			}
			brandIDs[spec.Name] = brand.ID
			stdLog.Printf("Created brand: %s", spec.Name)
		} else {
			brandIDs[spec.Name] = existing.ID
			stdLog.Printf("Brand already exists: %s", spec.Name)
		}
	}

	// 添加商品
	items := []models.Item{
		{
			Name:          "갤럭시 버즈",
			TypeID:        typeIDs["전자제품"],
			BrandID:       brandIDs["삼성전자"],
			Price:         models.NewMoneyFromInt(159000),
			StockQuantity: 120,
			ImageURL:      "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
		},
		{
			Name:          "그램 노트북",
			TypeID:        typeIDs["전자제품"],
			BrandID:       brandIDs["LG전자"],
			Price:         models.NewMoneyFromInt(1890000),
			StockQuantity: 30,
			ImageURL:      "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=800",
		},
		{
			Name:          "에어 포스 1",
			TypeID:        typeIDs["패션"],
			BrandID:       brandIDs["나이키"],
			Price:         models.NewMoneyFromInt(139000),
			StockQuantity: 80,
			ImageURL:      "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=800",
		},
		{
			Name:          "진라면 20입",
			TypeID:        typeIDs["식품"],
			BrandID:       brandIDs["오뚜기"],
			Price:         models.NewMoneyFromInt(15900),
			StockQuantity: 500,
			ImageURL:      "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=800",
		},
	}
	createdItems := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.TypeID == 0 || item.BrandID == 0 {
			continue
		}
		var existing models.Item
		if err := models.DB.Where("name = ?", item.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create item %s: %v", item.Name, err)
				continue
			}
			createdItems = append(createdItems, item)
			stdLog.Printf("Created item: %s", item.Name)
		} else {
			createdItems = append(createdItems, existing)
			stdLog.Printf("Item already exists: %s", item.Name)
		}
	}

	// 添加进行中的限时特价
	seedTimeDeal(stdLog.Printf, createdItems)

	// 添加演示会员
	var existingMember models.Member
	if err := models.DB.Where("email = ?", "demo@zzirit.shop").First(&existingMember).Error; err != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if hashErr != nil {
			stdLog.Printf("Failed to hash demo member password: %v", hashErr)
		} else {
			member := models.Member{
				Email:        "demo@zzirit.shop",
				PasswordHash: string(hash),
				Name:         "데모회원",
			}
			if err := models.DB.Create(&member).Error; err != nil {
				stdLog.Printf("Failed to create demo member: %v", err)
			} else {
				stdLog.Printf("Created demo member: %s", member.Email)
			}
		}
	} else {
		stdLog.Printf("Demo member already exists: %s", existingMember.Email)
	}

	stdLog.Printf("Seed finished")
}

func seedTimeDeal(logf func(format string, v ...interface{}), items []models.Item) {
	if len(items) == 0 {
		logf("No items available, skip time deal seed")
		return
	}
	var existing models.TimeDeal
	if err := models.DB.Where("title = ?", "오늘의 타임딜").First(&existing).Error; err == nil {
		logf("Time deal already exists: %s", existing.Title)
		return
	}

	const ratio = 20
	now := time.Now()
	deal := models.TimeDeal{
		Title:         "오늘의 타임딜",
		DiscountRatio: ratio,
		StartTime:     now.Add(-1 * time.Hour),
		EndTime:       now.Add(5 * time.Hour),
	}
	for _, item := range items {
		quantity := item.StockQuantity / 2
		if quantity < 1 {
			quantity = 1
		}
		deal.Items = append(deal.Items, models.TimeDealItem{
			ItemID:        item.ID,
			ItemName:      item.Name,
			Quantity:      quantity,
			OriginalPrice: item.Price,
			FinalPrice:    service.DiscountedPrice(item.Price, ratio),
		})
	}
	if err := models.DB.Create(&deal).Error; err != nil {
		logf("Failed to create time deal: %v", err)
		return
	}
	logf("Created time deal: %s", deal.Title)
}
