// Package assets provides the recipe templates, images and documents that
// recipe assembly needs.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver tries the custom FilesystemLoader first, falling back to
// EmbeddedLoader if the asset is not found. This allows replacing the recipe
// template or the logo while keeping the other built-in.
//
// # Directory Structure
//
//	{basePath}/
//	├── recipes/
//	│   └── {name}.recipe        # calibre recipe template
//	└── images/
//	    └── {name}.png           # logo written next to the recipe
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
