package india

// States lists Indian states and union territories for address forms.
var States = []string{
	"Andhra Pradesh",
	"Arunachal Pradesh",
	"Assam",
	"Bihar",
	"Chhattisgarh",
	"Goa",
	"Gujarat",
	"Haryana",
	"Himachal Pradesh",
	"Jharkhand",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Odisha",
	"Punjab",
	"Rajasthan",
	"Sikkim",
	"Tamil Nadu",
	"Telangana",
	"Tripura",
	"Uttar Pradesh",
	"Uttarakhand",
	"West Bengal",
	"Andaman and Nicobar Islands",
	"Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu",
	"Delhi",
	"Jammu and Kashmir",
	"Ladakh",
	"Lakshadweep",
	"Puducherry",
}

// Districts maps a state to its major districts, used to populate the
// district dropdown after a state is chosen. Coverage is partial.
var Districts = map[string][]string{
	"Maharashtra":    {"Mumbai", "Pune", "Nagpur", "Thane", "Nashik", "Aurangabad", "Solapur"},
	"Karnataka":      {"Bengaluru Urban", "Mysuru", "Mangaluru", "Hubballi", "Belagavi", "Kalaburagi"},
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem", "Tirunelveli"},
	"Delhi":          {"Central Delhi", "East Delhi", "New Delhi", "North Delhi", "South Delhi", "West Delhi"},
	"Gujarat":        {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar"},
	"Rajasthan":      {"Jaipur", "Jodhpur", "Kota", "Udaipur", "Ajmer", "Bikaner"},
	"Uttar Pradesh":  {"Lucknow", "Kanpur", "Ghaziabad", "Agra", "Varanasi", "Meerut"},
	"West Bengal":    {"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri", "Malda"},
	"Telangana":      {"Hyderabad", "Warangal", "Nizamabad", "Khammam", "Karimnagar"},
	"Kerala":         {"Thiruvananthapuram", "Kochi", "Kozhikode", "Kollam", "Thrissur"},
	"Punjab":         {"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda"},
	"Haryana":        {"Gurugram", "Faridabad", "Panipat", "Ambala", "Karnal"},
	"Bihar":          {"Patna", "Gaya", "Bhagalpur", "Muzaffarpur", "Darbhanga"},
	"Madhya Pradesh": {"Indore", "Bhopal", "Jabalpur", "Gwalior", "Ujjain"},
}
