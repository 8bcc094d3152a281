// Package syntaxplugin provides a base for wiki syntax plugins that add a
// bracketed tag rendered from an HTML template.
//
// A plugin recognizes three forms of its tag:
//
//	[obsbutton/]            self-closing, rendered from the template
//	[obsbutton]...[/obsbutton]  a span owned by the plugin's lexer mode
//
// # Basic Usage
//
// Create a plugin for a tag and a template file, then register it with a pipeline:
//
//	plugin := syntaxplugin.MustNewTagPlugin("obsbutton", "button.html",
//	    syntaxplugin.WithRoot("/srv/wiki/lib/plugins/door43obs"),
//	    syntaxplugin.WithTranslator(syntaxplugin.MapTranslator{"label": "Open Bible Stories"}),
//	)
//
//	pipeline := syntaxplugin.NewPipeline()
//	pipeline.MustRegister(plugin)
//	out, err := pipeline.Render(ctx, syntaxplugin.FormatXHTML, "See [obsbutton/] here")
//
// # Templates
//
// Templates live in <root>/templates. A leading HTML comment followed by a
// newline is treated as documentation and dropped. Strings wrapped in @ signs
// are localization keys:
//
//	<!-- Button shown on every OBS page -->
//	<a class="button" href="/obs">@label@</a>
//
// Keys without a translation stay in the output as written, so missing strings
// are easy to spot.
//
// # Localization
//
// LoadCatalog reads <root>/lang/<locale>/lang.yaml files. Catalog.Translator
// picks the closest locale and falls back to English for missing keys.
//
// # Host Integration
//
// Hosts with their own lexer call ConnectTo, Handle and Render directly.
// ConnectTo needs only the Lexer interface, and Render writes to any OutputSink.
package syntaxplugin
