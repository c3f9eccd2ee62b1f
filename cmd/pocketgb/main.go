// Command pocketgb is a desktop shell for the pocketgb emulator core:
// a fyne window blitting the framebuffer each frame, a menu for
// loading ROMs, cycling palettes, and copying a screenshot, and an
// optional websocket inspector for external tooling.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/gorilla/websocket"
	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"

	"pocketgb/internal/boot"
	"pocketgb/internal/gameboy"
	"pocketgb/internal/ppu"
	"pocketgb/pkg/romloader"
)

// keyMap translates fyne key names to joypad buttons.
var keyMap = map[fyne.KeyName]gameboy.Button{
	fyne.KeyA:         gameboy.ButtonA,
	fyne.KeyB:         gameboy.ButtonB,
	fyne.KeyUp:        gameboy.ButtonUp,
	fyne.KeyDown:      gameboy.ButtonDown,
	fyne.KeyLeft:      gameboy.ButtonLeft,
	fyne.KeyRight:     gameboy.ButtonRight,
	fyne.KeyReturn:    gameboy.ButtonStart,
	fyne.KeyBackspace: gameboy.ButtonSelect,
}

func main() {
	romPath := flag.String("rom", "", "path to the cartridge ROM to load")
	bootPath := flag.String("boot", "", "path to an optional boot ROM")
	paletteName := flag.String("palette", "dmg", "initial display palette name")
	inspect := flag.String("inspect", "", "if set, serve a websocket frame/register inspector on this address, e.g. :6060")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "pocketgb: -rom is required")
		os.Exit(1)
	}

	rom, err := romloader.Load(*romPath)
	if err != nil {
		log.Fatalf("pocketgb: loading rom: %v", err)
	}

	var bootImage []byte
	if *bootPath != "" {
		bootImage, err = romloader.Load(*bootPath)
		if err != nil {
			log.Fatalf("pocketgb: loading boot rom: %v", err)
		}
		if b, err := boot.New(bootImage); err == nil {
			log.Printf("pocketgb: boot rom %s (fingerprint %#x)", b.Model(), b.Fingerprint())
		}
	}

	gb, err := gameboy.New(bootImage, rom, gameboy.WithPalette(*paletteName), gameboy.WithSerialSink(os.Stdout))
	if err != nil {
		log.Fatalf("pocketgb: %v", err)
	}

	if *inspect != "" {
		go serveInspector(*inspect, gb)
	}

	runWindow(gb)
}

func runWindow(gb *gameboy.GameBoy) {
	fyneApp := app.NewWithID("pocketgb")
	w := fyneApp.NewWindow(gb.Title())
	w.Resize(fyne.NewSize(ppu.Width*3, ppu.Height*3))
	w.SetPadded(false)

	img := image.NewRGBA(image.Rect(0, 0, ppu.Width, ppu.Height))
	raster := canvas.NewRasterFromImage(img)
	raster.ScaleMode = canvas.ImageScalePixels
	w.SetContent(raster)

	w.SetMainMenu(buildMenu(fyneApp, w, img, raster, gb))

	if desk, ok := w.Canvas().(desktop.Canvas); ok {
		desk.SetOnKeyDown(func(e *fyne.KeyEvent) {
			if button, ok := keyMap[e.Name]; ok {
				gb.Press(button)
			}
		})
		desk.SetOnKeyUp(func(e *fyne.KeyEvent) {
			if button, ok := keyMap[e.Name]; ok {
				gb.Release(button)
			}
		})
	}

	go func() {
		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()
		for range ticker.C {
			gb.StepFrame()
			blit(img, gb.Framebuffer())
			raster.Refresh()
		}
	}()

	w.ShowAndRun()
}

// blit copies a flat RGB framebuffer into img's RGBA pixel buffer.
func blit(img *image.RGBA, fb *[ppu.Width * ppu.Height * 3]byte) {
	for i := 0; i < ppu.Width*ppu.Height; i++ {
		img.Pix[i*4] = fb[i*3]
		img.Pix[i*4+1] = fb[i*3+1]
		img.Pix[i*4+2] = fb[i*3+2]
		img.Pix[i*4+3] = 255
	}
}

func buildMenu(fyneApp fyne.App, w fyne.Window, img *image.RGBA, raster *canvas.Raster, gb *gameboy.GameBoy) *fyne.MainMenu {
	openROM := fyne.NewMenuItem("Open ROM...", func() {
		path, err := dialog.File().Title("Open ROM").Load()
		if err != nil {
			return
		}
		rom, err := romloader.Load(path)
		if err != nil {
			return
		}
		newGB, err := gameboy.New(nil, rom)
		if err != nil {
			return
		}
		*gb = *newGB
		w.SetTitle(gb.Title())
	})

	copyScreenshot := fyne.NewMenuItem("Copy Screenshot", func() {
		if err := clipboard.Init(); err != nil {
			return
		}
		clipboard.Write(clipboard.FmtImage, encodePNG(img))
	})

	cyclePalette := fyne.NewMenuItem("Cycle Palette", func() {
		gb.CyclePalette()
	})

	fileMenu := fyne.NewMenu("File", openROM, copyScreenshot, fyne.NewMenuItemSeparator(), cyclePalette)
	return fyne.NewMainMenu(fileMenu)
}

func encodePNG(img *image.RGBA) []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// inspectorFrame is the JSON payload streamed to websocket inspector
// clients once per frame.
type inspectorFrame struct {
	Registers gameboy.RegisterSnapshot `json:"registers"`
	Title     string                   `json:"title"`
}

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

// serveInspector runs a websocket endpoint at addr that streams
// register state once per emulated frame, for external debug tooling.
// It runs in its own goroutine and only ever reads copies handed back
// by Registers(), never touching Core state directly.
func serveInspector(addr string, gb *gameboy.GameBoy) {
	http.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		ticker := time.NewTicker(time.Second / 10)
		defer ticker.Stop()
		for range ticker.C {
			payload := inspectorFrame{Registers: gb.Registers(), Title: gb.Title()}
			data, err := json.Marshal(payload)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	})
	log.Printf("pocketgb: inspector listening on %s/inspect", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Printf("pocketgb: inspector stopped: %v", err)
	}
}
