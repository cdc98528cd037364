package domain

// Application holds the services shared by the argtree commands.
type Application struct {
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
