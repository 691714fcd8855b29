package dashboard

// Link is a titled external URL.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Block is one headed section of static page content.
type Block struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Items      []string `json:"items,omitempty"`
	Links      []Link   `json:"links,omitempty"`
}

// Welcome is the content shown while the placeholder is selected.
type Welcome struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Blocks   []Block `json:"blocks"`
}

// Profile link targets.
const (
	EuroparlFullListURL = "https://www.europarl.europa.eu/meps/en/full-list"
	IntegrityWatchURL   = "https://www.integritywatch.eu/"
	MEPIncomesURL       = "https://www.integritywatch.eu/mepincomes.php"
)

// AboutText closes every MEP page.
const AboutText = "We believe that transparency empowers citizens to engage more effectively in " +
	"decision-making. In line with the European Parliament's commitment to transparency, " +
	"EUncover aims to build greater legitimacy and accountability of Parliament Members to " +
	"the people they serve."

// WelcomeContent returns the placeholder page.
func WelcomeContent() *Welcome {
	return &Welcome{
		Title:    "Welcome to EUncover",
		Subtitle: "A student project from the MA Cultural Data & AI at the University of Amsterdam",
		Blocks: []Block{
			{
				Heading: "Why?",
				Paragraphs: []string{
					"A 2024 investigation by FollowTheMoney revealed that 25% of Members of the " +
						"European Parliament were implicated in scandals, often tied to informal " +
						"networks that influence decision-making. Information about MEPs is scattered " +
						"across many sources and rarely mapped as a network. EUncover consolidates it " +
						"to promote transparency and accountability for EU citizens.",
				},
			},
			{
				Heading: "How to use EUncover",
				Items: []string{
					"Choose a Member of the European Parliament from the dropdown. Only Irish MEPs are covered.",
					"Explore the network of family members, lobbyists, political organisations, think tanks and other affiliated entities.",
					"Zoom to navigate the graph and click on edges to see the nature of each relationship.",
					"Compare the network with the MEP's official declarations and recent news articles.",
				},
			},
			{
				Heading:    "How we collected our data",
				Paragraphs: []string{"The data was processed and structured into an interactive visual representation from:"},
				Items: []string{
					"Integrity Watch EU",
					"European Parliament transparency registers",
					"Public open data portals",
					"Wikipedia and the MediaWiki API",
				},
				Links: []Link{{Title: "Integrity Watch EU", URL: IntegrityWatchURL}},
			},
			{
				Heading: "Our Team and Contributions",
				Items: []string{
					"Julia Jasińska: website development and design, data management and analysis lead, data integration, structuring and cleaning, final notebook",
					"Mike Chow: graphic design (data pipelines), literature review (methodology), data cleaning and structuring (EU Integrity Watch, final notebook)",
					"Julia Vos: project chairperson, data collection and cleaning (Wikipedia)",
					"Renzo Pos: AI utilization and prototyping, data cleaning and structuring (EP website, EU Integrity Watch, Wikipedia)",
					"Royanne Ng: API scraping (Wikipedia), data collection and cleaning (Wikipedia), copyediting",
					"Lykke Winther-Bay: API scraping, data collection and structuring (news), core literature review",
				},
			},
			{
				Heading: "Disclaimer",
				Paragraphs: []string{
					"EUncover is a student research project. While we strive for accuracy, the data " +
						"may have limitations, biases or missing information. The visualizations are " +
						"based on publicly available data and we encourage further investigation into " +
						"the relationships presented.",
				},
			},
			{
				Heading: "Contact & Feedback",
				Paragraphs: []string{
					"As an academic project, we welcome feedback, suggestions and discussions. " +
						"If you have any questions or would like to know more about the project, " +
						"email julia.jasinska@student.uva.nl.",
					"Start exploring EU politics and influence now!",
				},
			},
		},
	}
}

// profileLinks returns the external profile links for an MEP.
func profileLinks(wikipediaURL string) []Link {
	links := []Link{{Title: "Official profiles of EU MEPs", URL: EuroparlFullListURL}}
	if wikipediaURL != "" {
		links = append(links, Link{Title: "MEP's Wikipedia", URL: wikipediaURL})
	}
	return append(links, Link{Title: "Integrity Watch EU | MEP income", URL: MEPIncomesURL})
}
