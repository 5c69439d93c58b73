// mb-fetch — CLI утилита для lookup сущностей MusicBrainz по MBID.
//
// Использование:
//
//	go run cmd/mb-fetch/main.go -entity artist -id 5b11f4ce-a62d-471e-81fc-a69a8278c7da -inc releases,aliases
//
// Конфигурация:
//
//	config.yaml из текущей директории (опционально, иначе дефолты)
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilkoid/musicbrainz-go/pkg/config"
	"github.com/ilkoid/musicbrainz-go/pkg/mb"
	"github.com/ilkoid/musicbrainz-go/pkg/utils"
)

// Version — версия утилиты (заполняется при сборке)
var Version = "dev"

func main() {
	entityFlag := flag.String("entity", "artist", "тип сущности: artist, release, release-group, recording, label, work, area, event, place")
	idFlag := flag.String("id", "", "MBID сущности (обязательный)")
	incFlag := flag.String("inc", "", "include параметры через запятую (например, releases,aliases)")
	configFlag := flag.String("config", "config.yaml", "путь к config.yaml")
	flag.Parse()

	if *idFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		flag.Usage()
		os.Exit(1)
	}

	// 1. Инициализируем логгер
	if err := utils.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logger: %v\n", err)
	}
	defer utils.Close()

	utils.Info("Starting mb-fetch", "version", Version, "entity", *entityFlag, "id", *idFlag)

	// 2. Создаем клиент: из config.yaml если он есть, иначе дефолты
	client := buildClient(*configFlag)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	includes := parseIncludes(*incFlag)

	// 3. Выполняем lookup и печатаем результат как JSON
	result, err := fetchEntity(ctx, client, *entityFlag, *idFlag, includes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		utils.Error("Fetch failed", "entity", *entityFlag, "id", *idFlag, "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	utils.Info("Fetch completed", "entity", *entityFlag, "id", *idFlag)
}

// buildClient создает mb.Client из config.yaml или с дефолтными настройками.
func buildClient(configPath string) *mb.Client {
	cfg, err := config.Load(configPath)
	if err != nil {
		utils.Warn("Config not loaded, using defaults", "path", configPath, "error", err)
		return mb.New()
	}

	client, err := mb.NewFromConfig(cfg.MB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client from config: %v\n", err)
		os.Exit(1)
	}

	utils.Info("Config loaded", "path", configPath, "base_url", cfg.MB.GetDefaults().BaseURL)
	return client
}

// parseIncludes разбирает CSV список include параметров в RawInclude значения.
func parseIncludes(raw string) []mb.Include {
	if raw == "" {
		return nil
	}

	var includes []mb.Include
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			includes = append(includes, mb.RawInclude(part))
		}
	}
	return includes
}

// fetchEntity выполняет lookup нужного типа. Тип выбирается строкой из флага,
// поэтому generic запрос разворачивается в switch.
func fetchEntity(ctx context.Context, client *mb.Client, entity, id string, includes []mb.Include) (any, error) {
	switch entity {
	case "artist":
		return client.FetchArtist().ID(id).Include(includes...).Execute(ctx)
	case "release":
		return client.FetchRelease().ID(id).Include(includes...).Execute(ctx)
	case "release-group":
		return client.FetchReleaseGroup().ID(id).Include(includes...).Execute(ctx)
	case "recording":
		return client.FetchRecording().ID(id).Include(includes...).Execute(ctx)
	case "label":
		return client.FetchLabel().ID(id).Include(includes...).Execute(ctx)
	case "work":
		return client.FetchWork().ID(id).Include(includes...).Execute(ctx)
	case "area":
		return client.FetchArea().ID(id).Include(includes...).Execute(ctx)
	case "event":
		return client.FetchEvent().ID(id).Include(includes...).Execute(ctx)
	case "place":
		return client.FetchPlace().ID(id).Include(includes...).Execute(ctx)
	default:
		return nil, fmt.Errorf("unknown entity type: %s", entity)
	}
}
