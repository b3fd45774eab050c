package testcases

// All contains all scenes, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]Scene{
	"basic": basicScenes,
	"shape": shapeScenes,
	"model": modelScenes,
}
