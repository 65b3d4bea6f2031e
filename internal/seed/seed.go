// Package seed holds the static national park catalog loaded at startup.
package seed

import "github.com/okian/vista/internal/domain/model"

// Catalog returns a fresh copy of the park catalog. Every entry carries only
// descriptive metadata; ratings and counters are assigned by the store on
// create.
func Catalog() []model.Park {
	parks := make([]model.Park, len(catalog))
	copy(parks, catalog)
	return parks
}

var catalog = []model.Park{
	{
		ID:              "acadia",
		Name:            "Acadia",
		Location:        "Maine",
		Description:     "Covering most of Mount Desert Island and other coastal islands, Acadia features the tallest mountain on the Atlantic coast of the United States, granite peaks, ocean shoreline, woodlands, and lakes.",
		ImageURL:        "/images/parks/acadia.jpg",
		DateEstablished: "February 26, 1919",
		Area:            "49,071.40 acres",
		Visitors:        "3,961,661",
		Emoji:           "🌊",
	},
	{
		ID:              "american-samoa",
		Name:            "American Samoa",
		Location:        "American Samoa",
		Description:     "The southernmost national park is on three Samoan islands in the South Pacific. It protects coral reefs, rainforests, volcanic mountains, and white beaches.",
		ImageURL:        "/images/parks/american-samoa.jpg",
		DateEstablished: "October 31, 1988",
		Area:            "8,256.67 acres",
		Visitors:        "22,567",
		Emoji:           "🏝️",
	},
	{
		ID:              "arches",
		Name:            "Arches",
		Location:        "Utah",
		Description:     "This red-rock wonderland features more than 2,000 natural sandstone arches, including the world-famous Delicate Arch. The park preserves over 76,000 acres of high desert landscape.",
		ImageURL:        "/images/parks/arches.jpg",
		DateEstablished: "November 12, 1971",
		Area:            "76,678.98 acres",
		Visitors:        "1,806,865",
		Emoji:           "🌅",
	},
	{
		ID:              "badlands",
		Name:            "Badlands",
		Location:        "South Dakota",
		Description:     "Layered rock formations tell the story of 75 million years of geological history. This otherworldly landscape contains the largest undisturbed mixed grass prairie in the National Park System.",
		ImageURL:        "/images/parks/badlands.jpg",
		DateEstablished: "November 10, 1978",
		Area:            "242,755.94 acres",
		Visitors:        "1,207,534",
		Emoji:           "🏔️",
	},
	{
		ID:              "big-bend",
		Name:            "Big Bend",
		Location:        "Texas",
		Description:     "Named for the prominent bend in the Rio Grande, encompassing a large part of the Chihuahuan Desert with diverse wildlife.",
		ImageURL:        "/images/parks/big-bend.jpg",
		DateEstablished: "June 12, 1944",
		Area:            "801,163 acres",
		Visitors:        "561,458",
		Emoji:           "🌵",
	},
	{
		ID:              "biscayne",
		Name:            "Biscayne",
		Location:        "Florida",
		Description:     "A mostly underwater park protecting four marine ecosystems: mangrove forest, the Bay, the Keys, and coral reefs.",
		ImageURL:        "/images/parks/biscayne.jpg",
		DateEstablished: "June 28, 1980",
		Area:            "172,971 acres",
		Visitors:        "512,213",
		Emoji:           "🐠",
	},
	{
		ID:              "black-canyon-gunnison",
		Name:            "Black Canyon of the Gunnison",
		Location:        "Colorado",
		Description:     "Protects a quarter of the Gunnison River, featuring some of the steepest cliffs and oldest rock in North America.",
		ImageURL:        "/images/parks/black-canyon-gunnison.jpg",
		DateEstablished: "October 21, 1999",
		Area:            "30,780 acres",
		Visitors:        "335,862",
		Emoji:           "⛰️",
	},
	{
		ID:              "bryce-canyon",
		Name:            "Bryce Canyon",
		Location:        "Utah",
		Description:     "A geological amphitheater with hundreds of tall, multicolored sandstone hoodoos formed by erosion.",
		ImageURL:        "/images/parks/bryce-canyon.jpg",
		DateEstablished: "February 25, 1928",
		Area:            "35,835 acres",
		Visitors:        "2,498,075",
		Emoji:           "🗻",
	},
	{
		ID:              "canyonlands",
		Name:            "Canyonlands",
		Location:        "Utah",
		Description:     "A landscape eroded into canyons, buttes, and mesas by the Colorado and Green Rivers, containing ancient Pueblo artifacts.",
		ImageURL:        "/images/parks/canyonlands.jpg",
		DateEstablished: "September 12, 1964",
		Area:            "337,598 acres",
		Visitors:        "818,492",
		Emoji:           "🏔️",
	},
	{
		ID:              "capitol-reef",
		Name:            "Capitol Reef",
		Location:        "Utah",
		Description:     "Features the Waterpocket Fold, a 100-mile monocline exhibiting diverse geologic layers and sandstone domes.",
		ImageURL:        "/images/parks/capitol-reef.jpg",
		DateEstablished: "December 18, 1971",
		Area:            "241,905 acres",
		Visitors:        "1,422,490",
		Emoji:           "🏛️",
	},
	{
		ID:              "carlsbad-caverns",
		Name:            "Carlsbad Caverns",
		Location:        "New Mexico",
		Description:     "Features 117 caves including the famous Big Room, home to over 400,000 Mexican free-tailed bats.",
		ImageURL:        "/images/parks/carlsbad-caverns.jpg",
		DateEstablished: "May 14, 1930",
		Area:            "46,766 acres",
		Visitors:        "460,474",
		Emoji:           "🦇",
	},
	{
		ID:              "channel-islands",
		Name:            "Channel Islands",
		Location:        "California",
		Description:     "Five protected islands with unique Mediterranean ecosystem, home to over 2,000 species including the endemic island fox.",
		ImageURL:        "/images/parks/channel-islands.jpg",
		DateEstablished: "March 5, 1980",
		Area:            "249,561 acres",
		Visitors:        "262,581",
		Emoji:           "🦊",
	},
	{
		ID:              "congaree",
		Name:            "Congaree",
		Location:        "South Carolina",
		Description:     "The largest portion of old-growth floodplain forest in North America, featuring some of the tallest trees in the eastern US.",
		ImageURL:        "/images/parks/congaree.jpg",
		DateEstablished: "November 10, 2003",
		Area:            "26,693 acres",
		Visitors:        "242,049",
		Emoji:           "🌲",
	},
	{
		ID:              "crater-lake",
		Name:            "Crater Lake",
		Location:        "Oregon",
		Description:     "Features the deepest lake in the US, formed by a collapsed volcano, known for its deep blue color and clarity.",
		ImageURL:        "/images/parks/crater-lake.jpg",
		DateEstablished: "May 22, 1902",
		Area:            "183,224 acres",
		Visitors:        "647,751",
		Emoji:           "🌋",
	},
	{
		ID:              "cuyahoga-valley",
		Name:            "Cuyahoga Valley",
		Location:        "Ohio",
		Description:     "Preserves the rural landscape along the Cuyahoga River between Cleveland and Akron, featuring waterfalls and historic sites.",
		ImageURL:        "/images/parks/cuyahoga-valley.jpg",
		DateEstablished: "October 11, 2000",
		Area:            "32,572 acres",
		Visitors:        "2,575,275",
		Emoji:           "🚂",
	},
	{
		ID:              "death-valley",
		Name:            "Death Valley",
		Location:        "California & Nevada",
		Description:     "The hottest, driest, and lowest place in North America, featuring vast desert landscapes and unique geological formations.",
		ImageURL:        "/images/parks/death-valley.jpg",
		DateEstablished: "October 31, 1994",
		Area:            "3,372,402 acres",
		Visitors:        "1,740,945",
		Emoji:           "☠️",
	},
	{
		ID:              "denali",
		Name:            "Denali",
		Location:        "Alaska",
		Description:     "Home to North America's highest peak, featuring subarctic ecosystems and diverse wildlife including grizzly bears.",
		ImageURL:        "/images/parks/denali.jpg",
		DateEstablished: "February 26, 1917",
		Area:            "4,740,912 acres",
		Visitors:        "594,660",
		Emoji:           "🐻",
	},
	{
		ID:              "dry-tortugas",
		Name:            "Dry Tortugas",
		Location:        "Florida",
		Description:     "A remote park 70 miles west of Key West, protecting coral reefs, seagrass beds, and historic Fort Jefferson.",
		ImageURL:        "/images/parks/dry-tortugas.jpg",
		DateEstablished: "October 26, 1992",
		Area:            "64,701 acres",
		Visitors:        "56,810",
		Emoji:           "🏰",
	},
	{
		ID:              "everglades",
		Name:            "Everglades",
		Location:        "Florida",
		Description:     "The largest tropical wilderness in the US, protecting a unique wetland ecosystem home to diverse wildlife.",
		ImageURL:        "/images/parks/everglades.jpg",
		DateEstablished: "May 30, 1934",
		Area:            "1,508,938 acres",
		Visitors:        "942,130",
		Emoji:           "🐊",
	},
	{
		ID:              "gates-arctic",
		Name:            "Gates of the Arctic",
		Location:        "Alaska",
		Description:     "The northernmost and most remote park, entirely above the Arctic Circle, with no roads, trails, or facilities.",
		ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
		DateEstablished: "December 2, 1980",
		Area:            "7,523,898 acres",
		Visitors:        "11,904",
		Emoji:           "❄️",
	},
	{
		ID:              "gateway-arch",
		Name:            "Gateway Arch",
		Location:        "Missouri",
		Description:     "The smallest national park, featuring the iconic 630-foot Gateway Arch and museum celebrating westward expansion.",
		ImageURL:        "https://images.unsplash.com/photo-1507003211169-0a1dd7d0e536?w=400&h=300&fit=crop",
		DateEstablished: "February 22, 2018",
		Area:            "193 acres",
		Visitors:        "1,865,590",
		Emoji:           "🏛️",
	},
	{
		ID:              "glacier",
		Name:            "Glacier",
		Location:        "Montana",
		Description:     "Features over 700 miles of trails through pristine forests, alpine meadows, and rugged mountains with glacial-carved peaks.",
		ImageURL:        "/images/parks/glacier.jpg",
		DateEstablished: "May 11, 1910",
		Area:            "1,013,125 acres",
		Visitors:        "2,946,681",
		Emoji:           "🏔️",
	},
	{
		ID:              "glacier-bay",
		Name:            "Glacier Bay",
		Location:        "Alaska",
		Description:     "A marine wilderness featuring tidewater glaciers, fjords, and diverse marine wildlife including whales and seals.",
		ImageURL:        "/images/parks/glacier-bay.jpg",
		DateEstablished: "December 2, 1980",
		Area:            "3,223,384 acres",
		Visitors:        "89,768",
		Emoji:           "🐋",
	},
	{
		ID:              "grand-canyon",
		Name:            "Grand Canyon",
		Location:        "Arizona",
		Description:     "One of the most spectacular examples of erosion, revealing nearly 2 billion years of Earth's geological history.",
		ImageURL:        "/images/parks/grand-canyon.jpg",
		DateEstablished: "February 26, 1919",
		Area:            "1,201,647 acres",
		Visitors:        "5,974,411",
		Emoji:           "🏔️",
	},
	{
		ID:              "grand-teton",
		Name:            "Grand Teton",
		Location:        "Wyoming",
		Description:     "Features the dramatic Teton Range rising abruptly from the valley floor, with pristine lakes and diverse wildlife.",
		ImageURL:        "/images/parks/grand-teton.jpg",
		DateEstablished: "February 26, 1929",
		Area:            "310,044 acres",
		Visitors:        "3,417,106",
		Emoji:           "⛰️",
	},
	{
		ID:              "great-basin",
		Name:            "Great Basin",
		Location:        "Nevada",
		Description:     "A desert mountain park featuring ancient bristlecone pines, limestone caves, and the Wheeler Peak Glacier.",
		ImageURL:        "/images/parks/great-basin.jpg",
		DateEstablished: "October 27, 1986",
		Area:            "77,180 acres",
		Visitors:        "153,094",
		Emoji:           "🌲",
	},
	{
		ID:              "great-sand-dunes",
		Name:            "Great Sand Dunes",
		Location:        "Colorado",
		Description:     "Features North America's tallest sand dunes against the dramatic backdrop of the snow-capped Sangre de Cristo Mountains.",
		ImageURL:        "/images/parks/great-sand-dunes.jpg",
		DateEstablished: "September 13, 2004",
		Area:            "107,342 acres",
		Visitors:        "527,546",
		Emoji:           "🏜️",
	},
	{
		ID:              "great-smoky-mountains",
		Name:            "Great Smoky Mountains",
		Location:        "Tennessee & North Carolina",
		Description:     "Ancient mountains with diverse wildlife, waterfalls, and historic sites. The most visited national park.",
		ImageURL:        "/images/parks/great-smoky-mountains.jpg",
		DateEstablished: "June 15, 1934",
		Area:            "522,427 acres",
		Visitors:        "12,937,633",
		Emoji:           "🌿",
	},
	{
		ID:              "guadalupe-mountains",
		Name:            "Guadalupe Mountains",
		Location:        "Texas",
		Description:     "Features the highest peak in Texas and the world's most extensive Permian fossil reef, with diverse desert life.",
		ImageURL:        "/images/parks/guadalupe-mountains.jpg",
		DateEstablished: "October 15, 1966",
		Area:            "86,367 acres",
		Visitors:        "209,967",
		Emoji:           "🦎",
	},
	{
		ID:              "haleakala",
		Name:            "Haleakala",
		Location:        "Hawaii",
		Description:     "Features a massive shield volcano with diverse ecosystems from tropical rainforests to desert-like summit areas.",
		ImageURL:        "/images/parks/haleakala.jpg",
		DateEstablished: "August 1, 1916",
		Area:            "33,265 acres",
		Visitors:        "1,044,084",
		Emoji:           "🌺",
	},
	{
		ID:              "hawaii-volcanoes",
		Name:            "Hawaii Volcanoes",
		Location:        "Hawaii",
		Description:     "Home to two active volcanoes, showcasing ongoing volcanic processes and unique ecosystems created by lava flows.",
		ImageURL:        "/images/parks/hawaii-volcanoes.jpg",
		DateEstablished: "August 1, 1916",
		Area:            "325,605 acres",
		Visitors:        "1,116,891",
		Emoji:           "🌋",
	},
	{
		ID:              "hot-springs",
		Name:            "Hot Springs",
		Location:        "Arkansas",
		Description:     "The smallest national park in the lower 48, protecting natural hot springs and a historic bathhouse district.",
		ImageURL:        "/images/parks/hot-springs.jpg",
		DateEstablished: "March 4, 1921",
		Area:            "5,554 acres",
		Visitors:        "1,506,887",
		Emoji:           "♨️",
	},
	{
		ID:              "indiana-dunes",
		Name:            "Indiana Dunes",
		Location:        "Indiana",
		Description:     "Protects diverse ecosystems along Lake Michigan's southern shore, including beaches, dunes, wetlands, and prairies.",
		ImageURL:        "/images/parks/indiana-dunes.jpg",
		DateEstablished: "February 15, 2019",
		Area:            "15,349 acres",
		Visitors:        "2,293,106",
		Emoji:           "🏖️",
	},
	{
		ID:              "isle-royale",
		Name:            "Isle Royale",
		Location:        "Michigan",
		Description:     "A remote wilderness island park in Lake Superior, known for its wolf and moose populations and pristine ecosystems.",
		ImageURL:        "/images/parks/isle-royale.jpg",
		DateEstablished: "April 3, 1940",
		Area:            "571,790 acres",
		Visitors:        "28,965",
		Emoji:           "🐺",
	},
	{
		ID:              "joshua-tree",
		Name:            "Joshua Tree",
		Location:        "California",
		Description:     "Where the Mojave and Colorado deserts meet, featuring unique Joshua trees, rock formations, and diverse desert life.",
		ImageURL:        "/images/parks/joshua-tree.jpg",
		DateEstablished: "October 31, 1994",
		Area:            "792,726 acres",
		Visitors:        "3,058,294",
		Emoji:           "🌲",
	},
	{
		ID:              "katmai",
		Name:            "Katmai",
		Location:        "Alaska",
		Description:     "Famous for brown bears catching salmon at Brooks Falls, also featuring volcanic landscapes and pristine wilderness.",
		ImageURL:        "/images/parks/katmai.jpg",
		DateEstablished: "December 2, 1980",
		Area:            "3,674,530 acres",
		Visitors:        "33,908",
		Emoji:           "🐻",
	},
	{
		ID:              "kenai-fjords",
		Name:            "Kenai Fjords",
		Location:        "Alaska",
		Description:     "Features the Harding Icefield and coastal fjords carved by glaciers, with abundant marine wildlife.",
		ImageURL:        "/images/parks/kenai-fjords.jpg",
		DateEstablished: "December 2, 1980",
		Area:            "669,984 acres",
		Visitors:        "411,782",
		Emoji:           "🧊",
	},
	{
		ID:              "kings-canyon",
		Name:            "Kings Canyon",
		Location:        "California",
		Description:     "Features deep canyons, towering cliffs, and giant sequoia groves in the southern Sierra Nevada mountains.",
		ImageURL:        "/images/parks/kings-canyon.jpg",
		DateEstablished: "March 4, 1940",
		Area:            "461,901 acres",
		Visitors:        "633,129",
		Emoji:           "🌲",
	},
	{
		ID:              "kobuk-valley",
		Name:            "Kobuk Valley",
		Location:        "Alaska",
		Description:     "Protects the central portion of the Kobuk River valley, featuring sand dunes and important caribou migration routes.",
		ImageURL:        "/images/parks/kobuk-valley.jpg",
		DateEstablished: "December 2, 1980",
		Area:            "1,750,717 acres",
		Visitors:        "15,500",
		Emoji:           "🦌",
	},
	{
		ID:              "lake-clark",
		Name:            "Lake Clark",
		Location:        "Alaska",
		Description:     "A diverse park featuring active volcanoes, glaciers, wild rivers, and pristine lakes with abundant wildlife.",
		ImageURL:        "/images/parks/lake-clark.jpg",
		DateEstablished: "December 2, 1980",
		Area:            "2,619,816 acres",
		Visitors:        "19,714",
		Emoji:           "🏔️",
	},
	{
		ID:              "lassen-volcanic",
		Name:            "Lassen Volcanic",
		Location:        "California",
		Description:     "Features active volcanic features including hot springs, fumaroles, and the largest plug dome volcano in the world.",
		ImageURL:        "/images/parks/lassen-volcanic.jpg",
		DateEstablished: "August 9, 1916",
		Area:            "106,452 acres",
		Visitors:        "542,274",
		Emoji:           "🌋",
	},
	{
		ID:              "mammoth-cave",
		Name:            "Mammoth Cave",
		Location:        "Kentucky",
		Description:     "Protects the world's longest known cave system with over 400 miles of surveyed passageways.",
		ImageURL:        "/images/parks/mammoth-cave.jpg",
		DateEstablished: "July 1, 1941",
		Area:            "54,012 acres",
		Visitors:        "533,206",
		Emoji:           "🕳️",
	},
	{
		ID:              "mesa-verde",
		Name:            "Mesa Verde",
		Location:        "Colorado",
		Description:     "Preserves over 5,000 archaeological sites including spectacular cliff dwellings of the Ancient Pueblo peoples.",
		ImageURL:        "/images/parks/mesa-verde.jpg",
		DateEstablished: "June 29, 1906",
		Area:            "52,485 acres",
		Visitors:        "548,477",
		Emoji:           "🏛️",
	},
	{
		ID:              "mount-rainier",
		Name:            "Mount Rainier",
		Location:        "Washington",
		Description:     "Features an active volcano covered by glaciers, surrounded by wildflower meadows, old-growth forests, and pristine wilderness.",
		ImageURL:        "/images/parks/mount-rainier.jpg",
		DateEstablished: "March 2, 1899",
		Area:            "236,381 acres",
		Visitors:        "1,670,063",
		Emoji:           "🏔️",
	},
	{
		ID:              "new-river-gorge",
		Name:            "New River Gorge",
		Location:        "West Virginia",
		Description:     "The newest national park, protecting a deep river canyon carved through ancient mountains with world-class recreation.",
		ImageURL:        "/images/parks/new-river-gorge.jpg",
		DateEstablished: "December 27, 2020",
		Area:            "7,021 acres",
		Visitors:        "1,682,720",
		Emoji:           "🌉",
	},
	{
		ID:              "north-cascades",
		Name:            "North Cascades",
		Location:        "Washington",
		Description:     "A rugged alpine wilderness with jagged peaks, pristine forests, and over 300 glaciers in the American Alps.",
		ImageURL:        "/images/parks/north-cascades.jpg",
		DateEstablished: "October 2, 1968",
		Area:            "504,654 acres",
		Visitors:        "30,154",
		Emoji:           "⛰️",
	},
	{
		ID:              "olympic",
		Name:            "Olympic",
		Location:        "Washington",
		Description:     "Features diverse ecosystems from Pacific coastline to temperate rainforests to alpine areas, with unique wildlife.",
		ImageURL:        "/images/parks/olympic.jpg",
		DateEstablished: "June 29, 1938",
		Area:            "922,649 acres",
		Visitors:        "2,718,925",
		Emoji:           "🌲",
	},
	{
		ID:              "petrified-forest",
		Name:            "Petrified Forest",
		Location:        "Arizona",
		Description:     "Features one of the world's largest concentrations of petrified wood and fossils from the Late Triassic period.",
		ImageURL:        "/images/parks/petrified-forest.jpg",
		DateEstablished: "December 9, 1962",
		Area:            "221,390 acres",
		Visitors:        "590,334",
		Emoji:           "🪨",
	},
	{
		ID:              "pinnacles",
		Name:            "Pinnacles",
		Location:        "California",
		Description:     "Protects unique rock formations created by ancient volcanic activity, home to endangered California condors.",
		ImageURL:        "/images/parks/pinnacles.jpg",
		DateEstablished: "January 10, 2013",
		Area:            "26,686 acres",
		Visitors:        "348,857",
		Emoji:           "🦅",
	},
	{
		ID:              "redwood",
		Name:            "Redwood",
		Location:        "California",
		Description:     "Protects nearly half of the remaining coastal redwoods, the tallest trees on Earth, along with pristine coastline.",
		ImageURL:        "/images/parks/redwood.jpg",
		DateEstablished: "October 2, 1968",
		Area:            "138,999 acres",
		Visitors:        "435,879",
		Emoji:           "🌲",
	},
	{
		ID:              "rocky-mountain",
		Name:            "Rocky Mountain",
		Location:        "Colorado",
		Description:     "Features majestic mountain environments with wildlife, varied climates, and environments from meadows to alpine tundra.",
		ImageURL:        "/images/parks/rocky-mountain.jpg",
		DateEstablished: "January 26, 1915",
		Area:            "265,807 acres",
		Visitors:        "4,300,424",
		Emoji:           "🏔️",
	},
	{
		ID:              "saguaro",
		Name:            "Saguaro",
		Location:        "Arizona",
		Description:     "Protects part of the Sonoran Desert, including forests of the giant saguaro cactus and diverse desert wildlife.",
		ImageURL:        "/images/parks/saguaro.jpg",
		DateEstablished: "October 14, 1994",
		Area:            "92,867 acres",
		Visitors:        "1,020,226",
		Emoji:           "🌵",
	},
	{
		ID:              "sequoia",
		Name:            "Sequoia",
		Location:        "California",
		Description:     "Home to giant sequoia trees including General Sherman, the world's largest tree, and diverse Sierra Nevada ecosystems.",
		ImageURL:        "/images/parks/sequoia.jpg",
		DateEstablished: "September 25, 1890",
		Area:            "404,064 acres",
		Visitors:        "1,059,548",
		Emoji:           "🌲",
	},
	{
		ID:              "shenandoah",
		Name:            "Shenandoah",
		Location:        "Virginia",
		Description:     "Features cascading waterfalls, spectacular vistas, and diverse plant and animal life along the Blue Ridge Mountains.",
		ImageURL:        "/images/parks/shenandoah.jpg",
		DateEstablished: "December 26, 1935",
		Area:            "199,173 acres",
		Visitors:        "1,666,265",
		Emoji:           "🍂",
	},
	{
		ID:              "theodore-roosevelt",
		Name:            "Theodore Roosevelt",
		Location:        "North Dakota",
		Description:     "Preserves part of the colorful North Dakota Badlands where Theodore Roosevelt ranched and developed his conservation ethic.",
		ImageURL:        "/images/parks/theodore-roosevelt.jpg",
		DateEstablished: "November 10, 1978",
		Area:            "70,447 acres",
		Visitors:        "749,389",
		Emoji:           "🦬",
	},
	{
		ID:              "virgin-islands",
		Name:            "Virgin Islands",
		Location:        "U.S. Virgin Islands",
		Description:     "Preserves tropical ecosystems and cultural history on three Caribbean islands with pristine beaches and coral reefs.",
		ImageURL:        "/images/parks/virgin-islands.jpg",
		DateEstablished: "August 2, 1956",
		Area:            "14,689 acres",
		Visitors:        "133,398",
		Emoji:           "🏝️",
	},
	{
		ID:              "voyageurs",
		Name:            "Voyageurs",
		Location:        "Minnesota",
		Description:     "A water-based park featuring pristine lakes, islands, and waterways with a rich history of fur trading.",
		ImageURL:        "/images/parks/voyageurs.jpg",
		DateEstablished: "April 8, 1975",
		Area:            "218,222 acres",
		Visitors:        "263,091",
		Emoji:           "🛶",
	},
	{
		ID:              "white-sands",
		Name:            "White Sands",
		Location:        "New Mexico",
		Description:     "Features the world's largest gypsum dune field with brilliant white sand dunes and unique desert life.",
		ImageURL:        "/images/parks/white-sands.jpg",
		DateEstablished: "December 20, 2019",
		Area:            "146,344 acres",
		Visitors:        "608,785",
		Emoji:           "🏜️",
	},
	{
		ID:              "wind-cave",
		Name:            "Wind Cave",
		Location:        "South Dakota",
		Description:     "Features one of the world's longest and most complex caves and protects mixed-grass prairie above ground.",
		ImageURL:        "/images/parks/wind-cave.jpg",
		DateEstablished: "January 9, 1903",
		Area:            "33,970 acres",
		Visitors:        "716,295",
		Emoji:           "🌪️",
	},
	{
		ID:              "wrangell-st-elias",
		Name:            "Wrangell-St. Elias",
		Location:        "Alaska",
		Description:     "The largest national park, featuring glaciers, peaks, and diverse wildlife in a vast wilderness setting.",
		ImageURL:        "/images/parks/wrangell-st-elias.jpg",
		DateEstablished: "December 2, 1980",
		Area:            "8,323,148 acres",
		Visitors:        "78,305",
		Emoji:           "🏔️",
	},
	{
		ID:              "yellowstone",
		Name:            "Yellowstone",
		Location:        "Wyoming, Montana & Idaho",
		Description:     "The world's first national park, featuring geothermal wonders, diverse wildlife, and pristine wilderness.",
		ImageURL:        "/images/parks/yellowstone.jpg",
		DateEstablished: "March 1, 1872",
		Area:            "2,219,791 acres",
		Visitors:        "4,501,382",
		Emoji:           "🌋",
	},
	{
		ID:              "yosemite",
		Name:            "Yosemite",
		Location:        "California",
		Description:     "Features towering waterfalls, granite cliffs, clear streams, and diverse ecosystems in the Sierra Nevada.",
		ImageURL:        "/images/parks/yosemite.jpg",
		DateEstablished: "October 1, 1890",
		Area:            "759,620 acres",
		Visitors:        "3,667,550",
		Emoji:           "🏔️",
	},
	{
		ID:              "zion",
		Name:            "Zion",
		Location:        "Utah",
		Description:     "Features massive sandstone cliffs, narrow slot canyons, and diverse plant and animal life in the Colorado Plateau.",
		ImageURL:        "/images/parks/zion.jpg",
		DateEstablished: "November 19, 1919",
		Area:            "147,242 acres",
		Visitors:        "4,624,448",
		Emoji:           "🏜️",
	},
}
