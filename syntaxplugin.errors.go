package syntaxplugin

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	// Construction errors
	ErrMsgEmptyTagName      = "tag name cannot be empty"
	ErrMsgInvalidTagName    = "tag name may only contain letters, digits, '_' and '-'"
	ErrMsgEmptyTemplateName = "template file name cannot be empty"
	ErrMsgEmptyMode         = "mode identifier cannot be empty"

	// Template errors
	ErrMsgTemplateRead = "failed to read template"

	// Registry errors
	ErrMsgNilPlugin      = "plugin cannot be nil"
	ErrMsgModeCollision  = "mode identifier already registered"
	ErrMsgTagCollision   = "tag name already registered"
	ErrMsgModeIsBaseMode = "mode identifier collides with the base mode"

	// Pipeline errors
	ErrMsgTokenizeFailed = "document tokenization failed"
	ErrMsgRenderFailed   = "plugin render failed"
	ErrMsgRenderCanceled = "render canceled"

	// Catalog errors
	ErrMsgCatalogRead  = "failed to read language file"
	ErrMsgCatalogParse = "failed to parse language file"
)

// Error code constants for categorization
const (
	ErrCodePlugin   = "SYNTAXPLUGIN_PLUGIN"
	ErrCodeTemplate = "SYNTAXPLUGIN_TEMPLATE"
	ErrCodeRegistry = "SYNTAXPLUGIN_REGISTRY"
	ErrCodeRender   = "SYNTAXPLUGIN_RENDER"
	ErrCodeCatalog  = "SYNTAXPLUGIN_CATALOG"
)

// NewInvalidTagNameError creates an error for tag names that would change the
// meaning of the derived patterns.
func NewInvalidTagNameError(msg, tagName string) error {
	return cuserr.NewValidationError(ErrCodePlugin, msg).
		WithMetadata(MetaKeyTag, tagName)
}

// NewEmptyTemplateNameError creates an error for a missing template file name
func NewEmptyTemplateNameError(tagName string) error {
	return cuserr.NewValidationError(ErrCodePlugin, ErrMsgEmptyTemplateName).
		WithMetadata(MetaKeyTag, tagName)
}

// NewEmptyModeError creates an error for an explicitly empty mode identifier
func NewEmptyModeError(tagName string) error {
	return cuserr.NewValidationError(ErrCodePlugin, ErrMsgEmptyMode).
		WithMetadata(MetaKeyTag, tagName)
}

// NewTemplateReadError wraps a failed template read
func NewTemplateReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeTemplate, ErrMsgTemplateRead).
		WithMetadata(MetaKeyPath, path)
}

// NewNilPluginError creates an error for registering a nil plugin
func NewNilPluginError() error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgNilPlugin)
}

// NewModeCollisionError creates an error for a duplicate mode identifier
func NewModeCollisionError(mode, existingTag string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgModeCollision).
		WithMetadata(MetaKeyMode, mode).
		WithMetadata(MetaKeyExisting, existingTag)
}

// NewTagCollisionError creates an error for a duplicate tag name
func NewTagCollisionError(tagName, existingMode string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgTagCollision).
		WithMetadata(MetaKeyTag, tagName).
		WithMetadata(MetaKeyExisting, existingMode)
}

// NewBaseModeCollisionError creates an error for a plugin claiming the base mode
func NewBaseModeCollisionError(tagName string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgModeIsBaseMode).
		WithMetadata(MetaKeyTag, tagName).
		WithMetadata(MetaKeyMode, BaseMode)
}

// NewTokenizeError wraps a lexer failure
func NewTokenizeError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgTokenizeFailed)
}

// NewRenderError wraps a plugin render failure with its document location
func NewRenderError(tagName, mode string, offset int, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgRenderFailed).
		WithMetadata(MetaKeyTag, tagName).
		WithMetadata(MetaKeyMode, mode).
		WithMetadata(MetaKeyOffset, strconv.Itoa(offset))
}

// NewRenderCanceledError wraps the context error that stopped a render
func NewRenderCanceledError(offset int, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgRenderCanceled).
		WithMetadata(MetaKeyOffset, strconv.Itoa(offset))
}

// NewCatalogReadError wraps a failed language file read
func NewCatalogReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeCatalog, ErrMsgCatalogRead).
		WithMetadata(MetaKeyPath, path)
}

// NewCatalogParseError wraps a language file that is not a flat YAML mapping
func NewCatalogParseError(path, locale string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeCatalog, ErrMsgCatalogParse).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyLocale, locale)
}
