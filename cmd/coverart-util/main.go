// coverart-util — CLI утилита для скачивания обложек из Cover Art Archive.
//
// Запрашивает front обложку релиза, скачивает картинку, ресайзит её по
// настройкам image_processing из config.yaml и сохраняет в файл.
//
// Использование:
//
//	go run cmd/coverart-util/main.go -id 76df3287-6cda-33eb-8e9a-044b5e15ffdd -out cover.jpg
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ilkoid/musicbrainz-go/pkg/config"
	"github.com/ilkoid/musicbrainz-go/pkg/mb"
	"github.com/ilkoid/musicbrainz-go/pkg/utils"
)

// Version — версия утилиты (заполняется при сборке)
var Version = "dev"

func main() {
	idFlag := flag.String("id", "", "MBID релиза (обязательный)")
	outFlag := flag.String("out", "cover.jpg", "путь для сохранения картинки")
	backFlag := flag.Bool("back", false, "скачать оборотную сторону вместо лицевой")
	configFlag := flag.String("config", "config.yaml", "путь к config.yaml")
	flag.Parse()

	if *idFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		flag.Usage()
		os.Exit(1)
	}

	// 1. Инициализируем логгер и graceful shutdown (Ctrl+C отменяет скачивание)
	if err := utils.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logger: %v\n", err)
	}

	rootCtx, cancel := context.WithCancel(context.Background())
	defer utils.SetupGracefulShutdown(cancel)()

	utils.Info("Starting coverart-util", "version", Version, "release", *idFlag)

	// 2. Загружаем конфиг (опционально)
	imgCfg := config.ImageProcConfig{}
	client := mb.New()
	if cfg, err := config.Load(*configFlag); err == nil {
		imgCfg = cfg.ImageProcessing
		client, err = mb.NewFromConfig(cfg.MB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating client from config: %v\n", err)
			os.Exit(1)
		}
		utils.Info("Config loaded", "path", *configFlag)
	} else {
		utils.Warn("Config not loaded, using defaults", "path", *configFlag, "error", err)
	}
	imgCfg = imgCfg.GetDefaults()

	ctx, cancelTimeout := context.WithTimeout(rootCtx, 2*time.Minute)
	defer cancelTimeout()

	// 3. Запрашиваем URL картинки (Archive отвечает редиректом)
	query := client.FetchReleaseCoverart().ID(*idFlag)
	if *backFlag {
		query = query.Back()
	} else {
		query = query.Front()
	}

	resp, err := query.Execute(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching coverart: %v\n", err)
		utils.Error("Coverart fetch failed", "release", *idFlag, "error", err)
		os.Exit(1)
	}

	utils.Info("Coverart resolved", "url", resp.URL)

	// 4. Скачиваем картинку
	data, err := download(ctx, resp.URL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error downloading image: %v\n", err)
		utils.Error("Image download failed", "url", resp.URL, "error", err)
		os.Exit(1)
	}

	// 5. Ресайзим и сохраняем
	processed, err := utils.ResizeImage(data, imgCfg.MaxWidth, imgCfg.Quality)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing image: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outFlag, processed, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outFlag, err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s (%d bytes, max width %dpx)\n", *outFlag, len(processed), imgCfg.MaxWidth)
	utils.Info("Coverart saved", "path", *outFlag, "bytes", len(processed))
}

// download скачивает картинку по прямому URL.
func download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
