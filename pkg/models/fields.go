package models

// SpecField describes one column of the phones table and where its value
// comes from on a spec page. Labels is a fallback chain: the first label
// present in the section wins.
//
// Fields with an empty Section are not scraped from the spec tables; they
// are derived by the detail resolver (brand/model from the page title,
// year from the announce date, image_url from the page header).
type SpecField struct {
	Column  string
	Section string
	Labels  []string
}

// Derived columns referenced by name outside the table.
const (
	ColBrand           = "brand"
	ColModel           = "model"
	ColYear            = "year"
	ColImageURL        = "image_url"
	ColLaunchAnnounced = "launch_announced"
)

// SpecFields drives field extraction, the phones table schema and the
// upsert statement. Column order here is the column order in the table.
var SpecFields = []SpecField{
	{Column: ColBrand},
	{Column: ColModel},
	{Column: ColYear},

	{Column: "network_technology", Section: "Network", Labels: []string{"Technology"}},
	{Column: "network_2g_bands", Section: "Network", Labels: []string{"2G bands"}},
	{Column: "network_3g_bands", Section: "Network", Labels: []string{"3G bands"}},
	{Column: "network_4g_bands", Section: "Network", Labels: []string{"4G bands"}},
	{Column: "network_5g_bands", Section: "Network", Labels: []string{"5G bands"}},
	{Column: "network_speed", Section: "Network", Labels: []string{"Speed"}},

	{Column: ColLaunchAnnounced, Section: "Launch", Labels: []string{"Announced"}},
	{Column: "launch_status", Section: "Launch", Labels: []string{"Status"}},

	{Column: "body_dimensions", Section: "Body", Labels: []string{"Dimensions"}},
	{Column: "body_weight", Section: "Body", Labels: []string{"Weight"}},
	{Column: "body_sim", Section: "Body", Labels: []string{"SIM"}},
	{Column: "body_build", Section: "Body", Labels: []string{"Build"}},
	{Column: "body_other", Section: "Body", Labels: []string{"Others"}},

	{Column: "display_type", Section: "Display", Labels: []string{"Type"}},
	{Column: "display_size", Section: "Display", Labels: []string{"Size"}},
	{Column: "display_resolution", Section: "Display", Labels: []string{"Resolution"}},
	{Column: "display_protection", Section: "Display", Labels: []string{"Protection"}},
	{Column: "display_other", Section: "Display", Labels: []string{"Features", "Others"}},

	{Column: "platform_chipset", Section: "Platform", Labels: []string{"Chipset"}},
	{Column: "platform_cpu", Section: "Platform", Labels: []string{"CPU"}},
	{Column: "platform_gpu", Section: "Platform", Labels: []string{"GPU"}},
	{Column: "platform_os", Section: "Platform", Labels: []string{"OS"}},

	{Column: "memory_card_slot", Section: "Memory", Labels: []string{"Card slot"}},
	{Column: "memory_internal", Section: "Memory", Labels: []string{"Internal"}},
	{Column: "memory_other", Section: "Memory", Labels: []string{"Others"}},

	{Column: "main_camera_modules", Section: "Main Camera", Labels: []string{"Triple", "Quad", "Single", "Dual"}},
	{Column: "main_camera_features", Section: "Main Camera", Labels: []string{"Features"}},
	{Column: "main_camera_video", Section: "Main Camera", Labels: []string{"Video"}},

	{Column: "selfie_camera_modules", Section: "Selfie camera", Labels: []string{"Single", "Dual"}},
	{Column: "selfie_camera_features", Section: "Selfie camera", Labels: []string{"Features"}},
	{Column: "selfie_camera_video", Section: "Selfie camera", Labels: []string{"Video"}},

	{Column: "sound_jack", Section: "Sound", Labels: []string{"3.5mm jack"}},
	{Column: "sound_loudspeaker", Section: "Sound", Labels: []string{"Loudspeaker"}},
	{Column: "sound_other", Section: "Sound", Labels: []string{"Others"}},

	{Column: "comms_wlan", Section: "Comms", Labels: []string{"WLAN"}},
	{Column: "comms_bluetooth", Section: "Comms", Labels: []string{"Bluetooth"}},
	{Column: "comms_positioning", Section: "Comms", Labels: []string{"Positioning", "GPS"}},
	{Column: "comms_nfc", Section: "Comms", Labels: []string{"NFC"}},
	{Column: "comms_radio", Section: "Comms", Labels: []string{"Radio"}},
	{Column: "comms_usb", Section: "Comms", Labels: []string{"USB"}},

	{Column: "features_sensors", Section: "Features", Labels: []string{"Sensors"}},

	{Column: "battery_type", Section: "Battery", Labels: []string{"Type"}},
	{Column: "battery_charging", Section: "Battery", Labels: []string{"Charging"}},

	{Column: "misc_colors", Section: "Misc", Labels: []string{"Colors"}},
	{Column: "misc_models", Section: "Misc", Labels: []string{"Models"}},
	{Column: "misc_price", Section: "Misc", Labels: []string{"Price"}},
	{Column: "misc_sar", Section: "Misc", Labels: []string{"SAR"}},
	{Column: "misc_sar_eu", Section: "Misc", Labels: []string{"SAR EU"}},

	{Column: "tests_performance", Section: "Tests", Labels: []string{"Performance"}},
	{Column: "tests_display", Section: "Tests", Labels: []string{"Display"}},
	{Column: "tests_camera", Section: "Tests", Labels: []string{"Camera"}},
	{Column: "tests_loudspeaker", Section: "Tests", Labels: []string{"Loudspeaker"}},
	{Column: "tests_battery_life", Section: "Tests", Labels: []string{"Battery life"}},

	{Column: ColImageURL},
}

// SpecColumns returns the ordered column names of the spec fields.
func SpecColumns() []string {
	cols := make([]string, 0, len(SpecFields))
	for _, f := range SpecFields {
		cols = append(cols, f.Column)
	}
	return cols
}
