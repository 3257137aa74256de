package lookup

// areaCodes maps NANP area codes to the state or province and the main
// cities they serve.
var areaCodes = map[int]areaCode{
	201: {"New Jersey", []string{"Union City", "Jersey City", "Bayonne"}},
	202: {"District Of Columbia", []string{"Washington"}},
	203: {"Connecticut", []string{"Meriden", "Danbury", "Bridgeport"}},
	204: {"Manitoba", []string{"Winnipeg", "Brandon"}},
	205: {"Alabama", []string{"Jasper", "Clanton", "Birmingham"}},
	206: {"Washington", []string{"Seattle"}},
	207: {"Maine", []string{"Portland"}},
	208: {"Idaho", []string{"Pocatello", "Falls", "Boise"}},
	209: {"California", []string{"Modesto", "Merced", "Lodi"}},
	210: {"Texas", []string{"San Antonio"}},
	211: {"Non-Geographic", []string{"Health Services Number"}},
	212: {"New York", []string{"New York City"}},
	213: {"California", []string{"Los Angeles"}},
	214: {"Texas", []string{"Dallas"}},
	215: {"Pennsylvania", []string{"Philadelphia", "Levittown"}},
	216: {"Ohio", []string{"Lakewood", "Euclid", "Cleveland"}},
	217: {"Illinois", []string{"Springfield", "Decatur", "Champaign"}},
	218: {"Minnesota", []string{"Moorhead", "Ely", "Duluth"}},
	219: {"Indiana", []string{"Hammond", "Gary"}},
	224: {"Illinois", []string{"Skokie", "Evanston", "Arlington Heights"}},
	225: {"Louisiana", []string{"Baton Rouge"}},
	226: {"Ontario", []string{"Windsor", "London", "Kitchener"}},
	227: {"Maryland Silver", []string{"Spring"}},
	228: {"Mississippi", []string{"Gulfport", "Biloxi"}},
	229: {"Georgia", []string{"Bainbridge", "Americus", "Albany"}},
	231: {"Michigan", []string{"Grant"}},
	234: {"Ohio", []string{"Youngstown", "Canton", "Akron"}},
	236: {"British Columbia", []string{"Vancouver"}},
	239: {"Florida", []string{"Cape Coral"}},
	240: {"Maryland", []string{"Frederick", "Bethesda", "Aspen Hill"}},
	242: {"The Bahamas", []string{"Nassau", "Freeport"}},
	246: {"Barbados", []string{"Bridgetown"}},
	248: {"Michigan", []string{"Rochester Hills", "Pontiac", "Farmington Hills"}},
	249: {"Sault Ste. Marie", []string{"Ontario"}},
	250: {"British Columbia", []string{"Victoria"}},
	251: {"Alabama", []string{"Mobile"}},
	252: {"North Carolina", []string{"Rocky Mount", "New Bern", "Elizabeth City"}},
	253: {"Washington", []string{"Tacoma", "Kent"}},
	254: {"Texas", []string{"Hamilton", "Eastland"}},
	256: {"Alabama", []string{"Huntsville", "Decatur"}},
	260: {"Indiana", []string{"Fort Wayne"}},
	262: {"Wisconsin", []string{"Racine", "Kenosha"}},
	264: {"Anguilla", []string{"St. John's"}},
	267: {"Pennsylvania", []string{"Philadelphia", "Levittown"}},
	268: {"Antigua and Barbuda", []string{"St. John's"}},
	269: {"Michigan", []string{"Marshall", "Battle Creek", "Allegan"}},
	270: {"Kentucky", []string{"Owensboro", "Henderson", "Bowling Green"}},
	274: {"Wisconsin", []string{"Green Bay"}},
	276: {"Virginia", []string{"Danville"}},
	278: {"Michigan", []string{"Ann Arbor"}},
	281: {"Texas", []string{"Missouri City", "Houston", "Baytown"}},
	283: {"Ohio", []string{"Cincinnati"}},
	284: {"British Virgin Islands", []string{"Road Town"}},
	289: {"Ontario", []string{"Vaughan", "Mississauga", "Brampton"}},
	301: {"Maryland Aspen", []string{"Bowie", "Bethesda", "Hill"}},
	302: {"Delaware", []string{"Wilmington", "Newark", "Dover"}},
	303: {"Colorado", []string{"Denver", "Boulder", "Aurora"}},
	304: {"West Virginia", []string{"Parkersburg", "Huntington", "Charleston"}},
	305: {"Florida", []string{"Beach", "Miami", "Miami", "Hialeah"}},
	306: {"Saskathcewan", []string{"Saskatoon", "Regina"}},
	307: {"Wyoming", []string{"Gillette", "Cheyenne", "Casper"}},
	308: {"Nebraska", []string{"Kearney"}},
	309: {"Illinois", []string{"Rock Island", "Pekin", "Bloomington"}},
	310: {"California", []string{"Los Angeles"}},
	311: {"Non-Geographic", []string{"Municipal Number Services"}},
	312: {"Illinois", []string{"Chicago"}},
	313: {"Michigan", []string{"Detroit", "Dearborn"}},
	314: {"Missouri", []string{"St. Louis", "Florissant"}},
	315: {"New York", []string{"Utica", "Syracuse"}},
	316: {"Kansas", []string{"Wichita"}},
	317: {"Indiana", []string{"Indianapolis"}},
	318: {"Louisiana", []string{"Shreveport", "Monroe", "Bossier City"}},
	319: {"Iowa", []string{"Iowa City", "Cedar Rapids"}},
	320: {"Minnesota", []string{"Little Falls", "Alexandria"}},
	321: {"Florida", []string{"Palm Bay", "Orlando", "Melbourne"}},
	323: {"California", []string{"Los Angeles"}},
	325: {"Texas", []string{"San Angelo", "Abilene"}},
	330: {"Ohio", []string{"Youngstown", "Canton", "Akron"}},
	331: {"Illinois", []string{"Wheaton", "Naperville", "Aurora"}},
	334: {"Alabama", []string{"Montgomery", "Dothan", "Auburn"}},
	336: {"North Carolina", []string{"Kernersville", "High Point", "Greensboro"}},
	337: {"Louisiana", []string{"Lake Charles", "Lafayette"}},
	339: {"Massachusetts", []string{"Medford", "Malden", "Lynn"}},
	340: {"U.S. Virgin Islands", []string{"Charlotte Amalie"}},
	341: {"California", []string{"Oakland"}},
	343: {"Ontario", []string{"Ottawa"}},
	345: {"Cayman Islands", []string{"George Town"}},
	347: {"New York", []string{"Queens", "Brooklyn", "Bronx"}},
	351: {"Massachusetts", []string{"Lowell", "Lawrence", "Haverhill"}},
	352: {"Florida", []string{"Spring Hill", "Gainesville"}},
	360: {"Washington", []string{"Vancouver", "Bellingham"}},
	361: {"Texas", []string{"Victoria", "Corpus Christi"}},
	364: {"Kentucky", []string{"Owensboro"}},
	369: {"California", []string{"Santa Rosa"}},
	380: {"Ohio", []string{"Columbus"}},
	385: {"Utah", []string{"Provo", "Orem", "Ogden"}},
	386: {"Florida", []string{"Daytona Beach"}},
	401: {"Rhode Island", []string{"Providence", "Pawtucket", "Cranston"}},
	402: {"Nebraska", []string{"Omaha", "Lincoln", "Columbus"}},
	403: {"Alberta", []string{"Red Deer", "Lethbridge", "Calgary"}},
	404: {"Georgia", []string{"Sandy Springs", "Atlanta"}},
	405: {"Oklahoma", []string{"Norman", "Moore", "MidWest City"}},
	406: {"Montana", []string{"Helena", "Bozeman", "Billings"}},
	407: {"Florida", []string{"Kissimmee", "Deltona", "Altamonte Springs"}},
	408: {"California", []string{"Morgan Hill", "Los Gatos", "Gilroy"}},
	409: {"Texas", []string{"Galveston", "Beaumont"}},
	410: {"Maryland", []string{"Columbia", "Baltimore", "Annapolis"}},
	411: {"Non-Geographic", []string{"Directory Assistance"}},
	412: {"Pennsylvania", []string{"Pittsburgh"}},
	413: {"Massachusetts", []string{"Northampton", "Holyoke", "Chicopee"}},
	414: {"Wisconsin", []string{"West Allis", "Milwaukee"}},
	415: {"California", []string{"San Francisco"}},
	416: {"Ontario", []string{"Toronto"}},
	417: {"Missouri", []string{"Springfield"}},
	418: {"Quebec", []string{"Quebec City", "Levis"}},
	419: {"Ohio", []string{"Toledo"}},
	423: {"Tennessee", []string{"Kingsport", "Johnson City", "Chattanooga"}},
	424: {"California", []string{"Compton", "Carson", "Beverly Hills"}},
	425: {"Washington", []string{"Renton", "Everett", "Bellevue"}},
	430: {"Texas", []string{"Tyler", "Longview"}},
	432: {"Texas", []string{"Odessa", "Midland"}},
	434: {"Virginia", []string{"Lynchburg"}},
	435: {"Utah", []string{"St. George", "Cedar City"}},
	438: {"Quebec", []string{"Montreal"}},
	440: {"Ohio", []string{"Lorain", "Elyria", "Cleveland"}},
	441: {"Bermuda", []string{"Pembroke"}},
	442: {"California", []string{"Encinitas", "Carlsbad", "Apple Valley"}},
	443: {"Maryland", []string{"Ellicott City", "Dundalk", "Baltimore"}},
	445: {"Pennsylvania", []string{"Philadelphia"}},
	447: {"Illinois", []string{"Champaign"}},
	450: {"Quebec", []string{"Repentigny", "Laval", "Brossard"}},
	456: {"Non-Geographic", []string{"NANP Inbound Routing Call"}},
	458: {"Oregon", []string{"Eugene"}},
	464: {"Illinois", []string{"Cicero"}},
	469: {"Texas", []string{"Grand Prairie", "Dallas", "Carrollton"}},
	470: {"Georgia", []string{"Atlanta"}},
	473: {"Grenada, Carriacou and Petite Martinique", []string{"St. George's"}},
	475: {"Connecticut", []string{"Meriden", "Danbury", "Bridgeport"}},
	478: {"Georgia", []string{"Macon"}},
	479: {"Arkansas", []string{"Fort Smith", "Fayetteville"}},
	480: {"Arizona", []string{"Phoenix", "Mesa", "Chandler"}},
	484: {"Pennsylvania", []string{"Reading", "Bethlehem", "Allentown"}},
	500: {"Non-Geographic Personal", []string{"Personal Communication Sercives"}},
	501: {"Arkansas", []string{"Little Rock"}},
	502: {"Kentucky", []string{"Louisville"}},
	503: {"Oregon", []string{"Portland", "Gresham", "Beaver"}},
	504: {"Louisiana", []string{"New Orleans", "Metairie", "Kenner"}},
	505: {"New Mexico", []string{"Santa Fe", "Farmington", "Albuquerque"}},
	506: {"New Brunswick", []string{"St. John", "Moncton", "Fredricton"}},
	507: {"Minnesota", []string{"Worthington", "Mankato", "Austin"}},
	508: {"Massachusetts", []string{"Plymouth", "Fall River", "Cambridge"}},
	509: {"Washington", []string{"Yakima", "Spokane", "Kennewick"}},
	510: {"California", []string{"Castro Valley", "Berkeley", "Alameda"}},
	511: {"Non-Geographic", []string{"Transportation, Traffic & Weather Info"}},
	512: {"Texas", []string{"Austin"}},
	513: {"Ohio", []string{"Hamilton", "Cincinnati"}},
	514: {"Quebec", []string{"Montreal"}},
	515: {"Iowa", []string{"Ames City"}},
	516: {"New York", []string{"Glen Cove", "Garden City", "Freeport"}},
	517: {"Michigan", []string{"Coldwater", "Clinton", "Charlotte"}},
	518: {"New York", []string{"Schenectady", "Albany"}},
	519: {"Ontario", []string{"Windsor", "London", "Kitchener"}},
	520: {"Arizona", []string{"Tucson", "Foothills", "Catalina", "Casas Adobes"}},
	530: {"California", []string{"Placerville", "Davis", "Chico"}},
	531: {"Nebraska", []string{"Omaha"}},
	533: {"Non-Geographic", []string{"Personal Communication Services"}},
	534: {"Wisconsin", []string{"Eau Claire"}},
	540: {"Virginia", []string{"Blacksburg", "Harrisonburg", "Fredericksburg"}},
	541: {"Oregon", []string{"Pendleton", "Eugene", "Bend"}},
	551: {"New Jersey", []string{"Union City", "Jersey City", "Bayonne"}},
	555: {"Non-Geographic", []string{"Directory Assistance"}},
	557: {"Missouri", []string{"St. Louis"}},
	559: {"California", []string{"Visalia", "Fresno", "Clovis"}},
	561: {"Florida", []string{"Delray Beach", "Boynton Beach", "Boca Raton"}},
	562: {"California", []string{"Downey", "Cerritos", "Bellflower"}},
	563: {"Iowa", []string{"Dubuque", "Davenport"}},
	564: {"Washington", []string{"Seattle"}},
	567: {"Ohio", []string{"Toledo"}},
	570: {"Pennsylvania", []string{"Scranton"}},
	571: {"Virginia", []string{"Arlington", "Annandale", "Alexandria"}},
	573: {"Missouri", []string{"Columbia"}},
	574: {"Indiana", []string{"South Bend", "Elkhart"}},
	575: {"New Mexico", []string{"Roswell", "Las Cruces", "Alamogordo"}},
	579: {"Quebec", []string{"Terrebone"}},
	580: {"Oklahoma", []string{"Lawton"}},
	581: {"Quebec", []string{"Quebec City", "Levis"}},
	585: {"New York", []string{"Rochester", "Arcade"}},
	586: {"Michigan", []string{"Warren", "Sterling Heights"}},
	587: {"Alberta", []string{"Edmonton", "Calgary"}},
	600: {"Non-Geographic", []string{"Specialized Telecom Services"}},
	601: {"Mississippi", []string{"Meridian", "Jackson", "Hattiesburg"}},
	602: {"Arizona", []string{"Phoenix"}},
	603: {"New Hampshire", []string{"Merrimack", "Manchester", "Dover"}},
	604: {"British Columbia", []string{"Richmond", "Coquitlam", "Burnaby"}},
	605: {"South Dakota", []string{"Sioux Falls", "Rapid City"}},
	606: {"Kentucky", []string{"Ashland"}},
	607: {"New York", []string{"Oneonta", "Norwich", "Elmira"}},
	608: {"Wisconsin", []string{"Madison", "La Crosse", "Janesville"}},
	609: {"New Jersey", []string{"Plainsboro", "Atlantic City", "Allentown"}},
	610: {"Pennsylvania", []string{"Reading", "Bethlehem", "Allentown"}},
	611: {"Non-Geographic", []string{"Special Applications"}},
	612: {"Minnesota", []string{"Minneapolis"}},
	613: {"Ontario", []string{"Ottawa", "Kingston"}},
	614: {"Ohio", []string{"Westerville", "Columbus"}},
	615: {"Tennessee", []string{"Nashville", "Murfreesboro"}},
	616: {"Michigan", []string{"Wyoming", "Grand Rapids"}},
	617: {"Massachusetts", []string{"Newton", "Cambridge", "Boston"}},
	618: {"Illinois", []string{"Alton"}},
	619: {"California", []string{"San Diego", "Chula Vista"}},
	620: {"Kansas", []string{"Dodge City"}},
	623: {"Arizona", []string{"Phoenix"}},
	626: {"California", []string{"El Monte", "Baldwin Park", "Alhambra"}},
	627: {"California", []string{"Santa Rosa"}},
	628: {"California", []string{"San Francisco"}},
	630: {"Illinois", []string{"Roselle", "Oswego", "Naperville"}},
	631: {"New York", []string{"Brookhaven", "Brentwood", "Babylon"}},
	636: {"Missouri", []string{"St. Peters", "St. Charles"}},
	641: {"Iowa", []string{"Mason City"}},
	646: {"New York", []string{"New York City"}},
	647: {"Ontario", []string{"Toronto"}},
	649: {"Turks and Caicos Islands", []string{"Providenciales", "Cockburn Town"}},
	650: {"California", []string{"Palo Alto", "Mountain View", "Daly City"}},
	651: {"Minnesota", []string{"St. Paul"}},
	657: {"California", []string{"Santa Ana", "Fullerton", "Anaheim"}},
	659: {"Alabama", []string{"Birmingham"}},
	660: {"Missouri", []string{"Marshall"}},
	661: {"California", []string{"Palmdale", "Lost Hills", "Earlimart"}},
	662: {"Mississippi", []string{"Starkville"}},
	664: {"Montserrat", []string{"Brades Estate"}},
	667: {"Maryland", []string{"Baltimore"}},
	669: {"California", []string{"San Jose"}},
	670: {"Commonwealth of the Northern Mariana Islands", []string{"Saipan"}},
	671: {"Guam", []string{"Hagatna"}},
	678: {"Georgia", []string{"Roswell", "Marietta", "Atlanta"}},
	679: {"Michigan", []string{"Detroit"}},
	681: {"West Virginia", []string{"Huntington", "Charleston"}},
	682: {"Texas", []string{"North Richland Hills", "Fort Worth", "Arlington"}},
	684: {"American Samoa", []string{"Tafuna", "Pago Pago"}},
	689: {"Florida", []string{"Orlando"}},
	700: {"Non-Geographic", []string{"Interexchange Carriers"}},
	701: {"North Carolina", []string{"Stanley", "Fargo", "Bismarck"}},
	702: {"Nevada", []string{"North Las Vegas", "Las Vegas", "Henderson"}},
	703: {"Virginia", []string{"Arlington", "Annandale", "Alexandria"}},
	704: {"North Carolina", []string{"Gastonia", "Concord", "Charlotte"}},
	705: {"Ontario", []string{"Sault Ste. Marie"}},
	706: {"Georgia", []string{"Dahlonega", "Augusta", "Athens"}},
	707: {"California", []string{"Fairfield", "Clearlake Oaks", "Benicia"}},
	708: {"Illinois", []string{"Oak Lawn", "Cicero", "Berwyn"}},
	709: {"New Foundland & Labrador", []string{"St. John's"}},
	710: {"Non-Geographic", []string{"U.S. Federal Government Official Use"}},
	711: {"Non-Geographic", []string{"Telecommunications Service Relay"}},
	712: {"Iowa", []string{"Sioux City", "Council Bluffs"}},
	713: {"Texas", []string{"Pasadena", "Houston"}},
	714: {"California", []string{"Fullerton", "Buena Park", "Anaheim"}},
	715: {"Wisconsin", []string{"Eau Claire", "Chippewa Falls"}},
	716: {"New York", []string{"Niagara Falls", "Chautauqua", "Cattaraugus"}},
	717: {"Pennsylvania", []string{"Lancaster"}},
	718: {"New York", []string{"Brooklyn", "Bronx", "Bellerose"}},
	719: {"Colorado", []string{"Monte Vista", "Leadville", "Alamosa"}},
	720: {"Colorado", []string{"Lakewood", "Denver", "Boulder"}},
	721: {"Sint Maarteen", []string{"Philipsburg", "Marigot"}},
	724: {"Pennsylvania", []string{"New Castle"}},
	727: {"Florida", []string{"Palm Harbor", "Largo", "Clearwater"}},
	730: {"Illinois", []string{"Alton"}},
	731: {"Tennessee", []string{"Jackson"}},
	732: {"New Jersey Brick", []string{"Toms River", "Edison", "Township"}},
	734: {"Michigan Ann", []string{"Livonia", "Canton", "Arbor"}},
	737: {"Texas", []string{"Austin"}},
	740: {"Ohio", []string{"Lancaster", "Athens"}},
	747: {"California", []string{"Glendale", "Burbank"}},
	752: {"California", []string{"Anaheim"}},
	754: {"Florida", []string{"Hollywood", "Fort Lauderdale", "Coral Springs"}},
	757: {"Virginia", []string{"Newport News", "Hampton", "Chesapeake"}},
	758: {"Saint Lucia", []string{"Gros Islet", "Castries"}},
	760: {"California", []string{"Encinitas", "Carlsbad", "Apple Valley"}},
	762: {"Georgia", []string{"Columbus", "Augusta", "Athens"}},
	763: {"Minnesota", []string{"Plymouth", "Maple Grove", "Brooklyn Park"}},
	764: {"California", []string{"Daly City"}},
	765: {"Indiana", []string{"Marion", "Lafayette", "Kokomo"}},
	767: {"Commonwealth of Dominica", []string{"Roseau"}},
	769: {"Mississippi", []string{"Natchez", "Jackson", "Hattiesburg"}},
	770: {"Georgia", []string{"Roswell", "Marietta", "Atlanta"}},
	772: {"Florida", []string{"Port St. Lucie"}},
	773: {"Illinois", []string{"Chicago"}},
	774: {"Massachusetts", []string{"Plymouth", "Framingham", "Brockton"}},
	775: {"Nevada", []string{"Sparks", "Reno", "Carson City"}},
	778: {"British Columbia", []string{"Vancouver", "Surrey", "Burnaby"}},
	779: {"Illinois", []string{"Rockford", "Joliet"}},
	780: {"Alberta", []string{"St. Albert", "Edmonton"}},
	781: {"Massachusetts", []string{"Medford", "Malden", "Lynn"}},
	784: {"Saint Vincent and the Grenadines", []string{"Kingstown"}},
	785: {"Kansas", []string{"Topeka", "Lawrence", "Abilene"}},
	786: {"Florida", []string{"Miami Beach", "Miami", "Hialeah"}},
	787: {"Puerto Rico", []string{"San Juan"}},
	800: {"Non-Geographic", []string{"Toll Free Service"}},
	801: {"Utah", []string{"Salt Lake City", "Provo", "Ogden"}},
	802: {"Vermont", []string{"Essex", "Brattleboro", "Bennington"}},
	803: {"South Carolina", []string{"Rock Hill", "Columbia"}},
	804: {"Virginia", []string{"Tuckahoe", "Richmond", "Mechanicsville"}},
	805: {"California", []string{"Santa Barbara", "Oxnard", "Camarillo"}},
	806: {"Texas", []string{"Lubbock", "Amarillo"}},
	807: {"Ontario", []string{"Thunber Bay"}},
	808: {"Hawaii", []string{"Honolulu"}},
	809: {"Dominican Republic", []string{"Santo Domingo"}},
	810: {"Michigan", []string{"Flint"}},
	811: {"Non-Geographic", []string{"Special Applications"}},
	812: {"Indiana", []string{"Terre Haute", "Evansville", "Bloomington"}},
	813: {"Florida", []string{"Tampa"}},
	814: {"Pennsylvania", []string{"Erie"}},
	815: {"Illinois", []string{"Rockford", "Joliet"}},
	816: {"Missouri", []string{"St. Joseph", "Lees Summit", "Kansas City"}},
	817: {"Texas", []string{"North Richland Hills", "Fort Worth", "Arlington"}},
	818: {"California", []string{"Calabasas", "Burbank", "Agoura Hills"}},
	819: {"Quebec", []string{"Shawinigan", "Gatineau", "Drummondville"}},
	822: {"Non-Geographic", []string{"Toll Free Service"}},
	828: {"North Carolina", []string{"Asheville"}},
	829: {"Dominican Republic", []string{"Santo Domingo"}},
	830: {"Texas", []string{"Medina"}},
	831: {"California", []string{"Santa Cruz", "Salinas"}},
	832: {"Texas", []string{"Missouri City", "Houston", "Baytown"}},
	833: {"Non-Geographic", []string{"Toll Free Service"}},
	835: {"Pennsylvania", []string{"Bethlehem"}},
	843: {"South Carolina", []string{"North Charleston", "Myrtle Beach", "Charleston"}},
	844: {"Non-Geographic", []string{"Toll Free Service"}},
	845: {"New York", []string{"Kingston"}},
	847: {"Illinois", []string{"Elgin", "Des Plaines", "Arlington Heights"}},
	848: {"New Jersey", []string{"Toms River", "Edison", "Brick Township"}},
	849: {"Dominican Republic", []string{"Santo Domingo"}},
	850: {"Florida", []string{"Tallahassee", "Pensacola"}},
	855: {"Non-Geographic", []string{"Toll Free Service"}},
	856: {"New Jersey", []string{"Vineland", "Camden"}},
	857: {"Massachusetts", []string{"Cambridge", "Brookline", "Boston"}},
	858: {"California", []string{"San Diego"}},
	859: {"Kentucky", []string{"Lexington"}},
	860: {"Connecticut", []string{"Manchester", "Hartford", "Bristol"}},
	862: {"New Jersey", []string{"Irvington", "East Orange", "Clifton"}},
	863: {"Florida", []string{"Lakeland"}},
	864: {"South Carolina", []string{"Greenville"}},
	865: {"Tennessee", []string{"Knoxville"}},
	866: {"Non-Geographic", []string{"Toll Free Service"}},
	867: {"Northwest Territories", []string{"Yellowknife", "White Horse"}},
	868: {"Trinidad and Tobago", []string{"San Fernando", "Port of Spain", "Chaguanas"}},
	869: {"Saint Kitts and Nevis", []string{"Charlestown", "Basseterre"}},
	870: {"Arkansas", []string{"West Memphis", "Jonesboro"}},
	872: {"Illinois", []string{"Chicago"}},
	876: {"Jamaica", []string{"Kingston"}},
	877: {"Non-Geographic", []string{"Toll Free Service"}},
	878: {"Pennsylvania", []string{"Pittsburgh"}},
	880: {"Non-Geographic", []string{"Toll Free Service"}},
	881: {"Non-Geographic", []string{"Toll Free Service"}},
	882: {"Non-Geographic", []string{"Toll Free Service"}},
	888: {"Non-Geographic", []string{"Toll Free Service"}},
	898: {"Non-Geographic", []string{"General Purpose Code"}},
	900: {"Non-Geographic", []string{"Premium Telephone Numbers"}},
	901: {"Tennessee", []string{"Memphis"}},
	902: {"Nova Scotia", []string{"Sydney", "Halifax"}},
	903: {"Texas", []string{"Tyler", "Longview"}},
	904: {"Florida", []string{"Jacksonville"}},
	905: {"Ontario", []string{"Vaughan", "Mississauga", "Brampton"}},
	906: {"Sault Ste Marie", []string{"Michigan"}},
	907: {"Alaska", []string{"Anchorage"}},
	908: {"Alaska", []string{"Juneau", "Fairbanks", "Elizabeth"}},
	909: {"California", []string{"Diamond Bar", "Chino", "Anaheim"}},
	910: {"North Carolina", []string{"Wilmington", "Jacksonville", "Fayetteville"}},
	911: {"Non-Geographic", []string{"Emergency Services"}},
	912: {"Georgia", []string{"Savannah"}},
	913: {"Kansas", []string{"Olathe", "Kansas City"}},
	914: {"New York", []string{"White Plains", "New Rochelle", "Mount Vernon"}},
	915: {"Texas", []string{"El Paso"}},
	916: {"California", []string{"Roseville", "Cordova", "Rancho", "Elk Grove"}},
	917: {"New York", []string{"New York City"}},
	918: {"Oklahoma", []string{"Tulsa", "Tahlequah", "Broken Arrow"}},
	919: {"North Carolina", []string{"Raleigh", "Durham", "Cary"}},
	920: {"Wisconsin", []string{"Oshkosh", "Green Bay", "Appleton"}},
	925: {"California", []string{"Livermore", "Concord", "Antioch"}},
	927: {"Florida", []string{"Orlando"}},
	928: {"Arizona", []string{"Yuma", "Prescott", "Flagstaff"}},
	931: {"Tennessee", []string{"Clarksville"}},
	935: {"California", []string{"San Diego"}},
	936: {"Texas", []string{"Nacogdoches", "Huntsville"}},
	937: {"Ohio", []string{"Springfield", "Kettering", "Dayton"}},
	938: {"Alabama", []string{"Huntsville"}},
	939: {"Puerto Rico", []string{"San Juan"}},
	940: {"Texas", []string{"Denton"}},
	941: {"Florida", []string{"Sarasota"}},
	947: {"Michigan", []string{"Troy", "Southfield", "Farmington Hills"}},
	949: {"California", []string{"Newport Beach", "Irvine", "Costa Mesa"}},
	951: {"California", []string{"Riverside", "Hemet", "Corona"}},
	952: {"Minnesota", []string{"Minnetonka", "Burnsville", "Bloomington"}},
	954: {"Florida", []string{"Hollywood", "Fort Lauderdale"}},
	956: {"Texas", []string{"Laredo"}},
	957: {"New Mexico", []string{"Albuquerque"}},
	959: {"Connecticut", []string{"Hartford"}},
	970: {"Colorado", []string{"Grand Junction", "Durango"}},
	971: {"Oregon", []string{"Portland", "Gresham", "Beaverton"}},
	972: {"Texas", []string{"Garland", "Dallas", "Carrollton"}},
	973: {"New Jersey", []string{"Passaic", "Orange", "Newark"}},
	975: {"Missouri", []string{"Kansas City"}},
	976: {"Non-Geographic", []string{"General Purpose Code"}},
	978: {"Massachusetts", []string{"Lowell", "Lawrence", "Haverhill"}},
	979: {"Texas", []string{"College Station", "Bryan"}},
	980: {"North Carolina", []string{"Gastonia", "Concord", "Charlotte"}},
	984: {"North Carolina", []string{"Raleigh"}},
	985: {"Louisiana", []string{"Hammond"}},
	989: {"Michigan", []string{"Saginaw", "Alpena", "Alma"}},
	999: {"Non-Geographic", []string{"General Purpose Code"}},
}
