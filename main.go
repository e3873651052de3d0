package main

import (
	"flag"
	"log"

	"github.com/decker502/viewkit/pkg/app"
	"github.com/decker502/viewkit/pkg/config"
	"github.com/decker502/viewkit/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	catalogPath = flag.String("config", config.DefaultViewCatalogPath, "视图配置文件路径")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据，必须在加载任何配置之前
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		CatalogPath: *catalogPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("viewkit - 视图控制器演示")

	// Start the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
