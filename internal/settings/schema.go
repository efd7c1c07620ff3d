package settings

// Settings keys that carry paths or nest path-bearing objects.
const (
	KeyImport                      = "import"
	KeyIgnorePaths                 = "ignorePaths"
	KeyGlobRoot                    = "globRoot"
	KeyDictionaryDefinitions       = "dictionaryDefinitions"
	KeyLanguageSettings            = "languageSettings"
	KeyOverrides                   = "overrides"
	KeyFilename                    = "filename"
	KeyPath                        = "path"
	KeyDictionaries                = "dictionaries"
	KeyCustomUserDictionaries      = "customUserDictionaries"
	KeyCustomWorkspaceDictionaries = "customWorkspaceDictionaries"
	KeyCustomFolderDictionaries    = "customFolderDictionaries"
)

// field describes how the value under a known key is walked. A field without
// a nested schema holds paths: a string or a sequence of strings. A field with
// a nested schema holds an object or a sequence of objects.
type field struct {
	nested schema
}

type schema map[string]field

var pathField = field{}

var dictionaryDefinitionSchema = schema{
	KeyPath: pathField,
}

var languageSettingSchema = schema{
	KeyDictionaryDefinitions: {nested: dictionaryDefinitionSchema},
}

var overrideSchema = schema{
	KeyFilename:              pathField,
	KeyIgnorePaths:           pathField,
	KeyDictionaryDefinitions: {nested: dictionaryDefinitionSchema},
	KeyLanguageSettings:      {nested: languageSettingSchema},
}

var rootSchema = schema{
	KeyImport:                pathField,
	KeyIgnorePaths:           pathField,
	KeyGlobRoot:              pathField,
	KeyDictionaryDefinitions: {nested: dictionaryDefinitionSchema},
	KeyLanguageSettings:      {nested: languageSettingSchema},
	KeyOverrides:             {nested: overrideSchema},
}
