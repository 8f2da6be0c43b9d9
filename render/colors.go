package render

// Shared palette
var (
	RgbBackground = Hex("#1a1b26") // Tokyo Night background
	RgbText       = RGB(255, 255, 255)
	RgbTextDim    = RGB(180, 180, 180)
	RgbAccent     = Hex("#7aa2f7") // primary
	RgbWarning    = Hex("#ff9e64") // secondary
	RgbDanger     = RGB(255, 80, 80)
	RgbShade      = RGB(0, 0, 0).WithAlpha(0.7)

	// Flight scene
	RgbSkyTop      = Hex("#1f3b73")
	RgbSkyHorizon  = Hex("#8fb8e8")
	RgbGround      = Hex("#2e5a2e")
	RgbGroundFar   = Hex("#5c7a3c")
	RgbTerrain     = Hex("#8b6b3d")
	RgbTerrainPeak = RGB(230, 230, 230)
	RgbCloud       = RGB(245, 245, 250)
	RgbStar        = RGB(255, 215, 0)
	RgbPlaneBody   = RGB(200, 200, 210)
	RgbPlaneWing   = RGB(140, 150, 170)
	RgbHUD         = RGB(0, 255, 128)
	RgbHUDPanel    = RGB(0, 0, 0).WithAlpha(0.5)

	// Flappy scene
	RgbFlappySky  = Hex("#24283b")
	RgbFlappyPipe = Hex("#7aa2f7")
	RgbFlappyBird = Hex("#ff9e64")
	RgbEyeWhite   = RGB(255, 255, 255)
	RgbEyePupil   = RGB(0, 0, 0)
)
